// Package proto contains protobuf definitions for the chunked comment stream.
package proto

//go:generate protoc --proto_path=. --proto_path=$HOME/bin/include --go_out=../internal/parser/generated/ndgr --go_opt=paths=source_relative ndgr.proto
