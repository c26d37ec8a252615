// Package proto holds the .proto sources. Generated Go packages land in
// proto/counter, proto/admin, proto/account and proto/storage and are not
// committed; run `go generate ./proto` after a fresh checkout.
package proto

//go:generate protoc --go_out=. --go_opt=module=counter-lab/proto --go-grpc_out=. --go-grpc_opt=module=counter-lab/proto counter.proto
//go:generate protoc --go_out=. --go_opt=module=counter-lab/proto --go-grpc_out=. --go-grpc_opt=module=counter-lab/proto admin.proto
//go:generate protoc --go_out=. --go_opt=module=counter-lab/proto --go-grpc_out=. --go-grpc_opt=module=counter-lab/proto account.proto
//go:generate protoc --go_out=. --go_opt=module=counter-lab/proto storage.proto
