// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: admin.proto

package admin

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CreateCounterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Number        int32                  `protobuf:"varint,2,opt,name=number,proto3" json:"number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCounterRequest) Reset() {
	*x = CreateCounterRequest{}
	mi := &file_admin_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCounterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCounterRequest) ProtoMessage() {}

func (x *CreateCounterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admin_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCounterRequest.ProtoReflect.Descriptor instead.
func (*CreateCounterRequest) Descriptor() ([]byte, []int) {
	return file_admin_proto_rawDescGZIP(), []int{0}
}

func (x *CreateCounterRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateCounterRequest) GetNumber() int32 {
	if x != nil {
		return x.Number
	}
	return 0
}

type RenameCounterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CounterId     string                 `protobuf:"bytes,1,opt,name=counter_id,json=counterId,proto3" json:"counter_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenameCounterRequest) Reset() {
	*x = RenameCounterRequest{}
	mi := &file_admin_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenameCounterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenameCounterRequest) ProtoMessage() {}

func (x *RenameCounterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admin_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenameCounterRequest.ProtoReflect.Descriptor instead.
func (*RenameCounterRequest) Descriptor() ([]byte, []int) {
	return file_admin_proto_rawDescGZIP(), []int{1}
}

func (x *RenameCounterRequest) GetCounterId() string {
	if x != nil {
		return x.CounterId
	}
	return ""
}

func (x *RenameCounterRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type ListCountersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCountersRequest) Reset() {
	*x = ListCountersRequest{}
	mi := &file_admin_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCountersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCountersRequest) ProtoMessage() {}

func (x *ListCountersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admin_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCountersRequest.ProtoReflect.Descriptor instead.
func (*ListCountersRequest) Descriptor() ([]byte, []int) {
	return file_admin_proto_rawDescGZIP(), []int{2}
}

type SearchCountersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchCountersRequest) Reset() {
	*x = SearchCountersRequest{}
	mi := &file_admin_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchCountersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchCountersRequest) ProtoMessage() {}

func (x *SearchCountersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admin_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchCountersRequest.ProtoReflect.Descriptor instead.
func (*SearchCountersRequest) Descriptor() ([]byte, []int) {
	return file_admin_proto_rawDescGZIP(), []int{3}
}

func (x *SearchCountersRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type CounterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CounterId     string                 `protobuf:"bytes,1,opt,name=counter_id,json=counterId,proto3" json:"counter_id,omitempty"`
	Owner         string                 `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Number        int32                  `protobuf:"varint,4,opt,name=number,proto3" json:"number,omitempty"`
	Value         int64                  `protobuf:"varint,5,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CounterResponse) Reset() {
	*x = CounterResponse{}
	mi := &file_admin_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CounterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CounterResponse) ProtoMessage() {}

func (x *CounterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admin_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CounterResponse.ProtoReflect.Descriptor instead.
func (*CounterResponse) Descriptor() ([]byte, []int) {
	return file_admin_proto_rawDescGZIP(), []int{4}
}

func (x *CounterResponse) GetCounterId() string {
	if x != nil {
		return x.CounterId
	}
	return ""
}

func (x *CounterResponse) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *CounterResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CounterResponse) GetNumber() int32 {
	if x != nil {
		return x.Number
	}
	return 0
}

func (x *CounterResponse) GetValue() int64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type ListCountersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Counters      []*CounterResponse     `protobuf:"bytes,1,rep,name=counters,proto3" json:"counters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCountersResponse) Reset() {
	*x = ListCountersResponse{}
	mi := &file_admin_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCountersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCountersResponse) ProtoMessage() {}

func (x *ListCountersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admin_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCountersResponse.ProtoReflect.Descriptor instead.
func (*ListCountersResponse) Descriptor() ([]byte, []int) {
	return file_admin_proto_rawDescGZIP(), []int{5}
}

func (x *ListCountersResponse) GetCounters() []*CounterResponse {
	if x != nil {
		return x.Counters
	}
	return nil
}

var File_admin_proto protoreflect.FileDescriptor

const file_admin_proto_rawDesc = "" +
	"\n" +
	"\vadmin.proto\x12\badmin.v1\"B\n" +
	"\x14CreateCounterRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06number\x18\x02 \x01(\x05R\x06number\"I\n" +
	"\x14RenameCounterRequest\x12\x1d\n" +
	"\n" +
	"counter_id\x18\x01 \x01(\tR\tcounterId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\x15\n" +
	"\x13ListCountersRequest\"-\n" +
	"\x15SearchCountersRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\"\x88\x01\n" +
	"\x0fCounterResponse\x12\x1d\n" +
	"\n" +
	"counter_id\x18\x01 \x01(\tR\tcounterId\x12\x14\n" +
	"\x05owner\x18\x02 \x01(\tR\x05owner\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x16\n" +
	"\x06number\x18\x04 \x01(\x05R\x06number\x12\x14\n" +
	"\x05value\x18\x05 \x01(\x03R\x05value\"M\n" +
	"\x14ListCountersResponse\x125\n" +
	"\bcounters\x18\x01 \x03(\v2\x19.admin.v1.CounterResponseR\bcounters2\xcf\x02\n" +
	"\x13CounterAdminService\x12J\n" +
	"\rCreateCounter\x12\x1e.admin.v1.CreateCounterRequest\x1a\x19.admin.v1.CounterResponse\x12J\n" +
	"\rRenameCounter\x12\x1e.admin.v1.RenameCounterRequest\x1a\x19.admin.v1.CounterResponse\x12M\n" +
	"\fListCounters\x12\x1d.admin.v1.ListCountersRequest\x1a\x1e.admin.v1.ListCountersResponse\x12Q\n" +
	"\x0eSearchCounters\x12\x1f.admin.v1.SearchCountersRequest\x1a\x1e.admin.v1.ListCountersResponseB\x19Z\x17counter-lab/proto/adminb\x06proto3"

var (
	file_admin_proto_rawDescOnce sync.Once
	file_admin_proto_rawDescData []byte
)

func file_admin_proto_rawDescGZIP() []byte {
	file_admin_proto_rawDescOnce.Do(func() {
		file_admin_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_admin_proto_rawDesc), len(file_admin_proto_rawDesc)))
	})
	return file_admin_proto_rawDescData
}

var file_admin_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_admin_proto_goTypes = []any{
	(*CreateCounterRequest)(nil),  // 0: admin.v1.CreateCounterRequest
	(*RenameCounterRequest)(nil),  // 1: admin.v1.RenameCounterRequest
	(*ListCountersRequest)(nil),   // 2: admin.v1.ListCountersRequest
	(*SearchCountersRequest)(nil), // 3: admin.v1.SearchCountersRequest
	(*CounterResponse)(nil),       // 4: admin.v1.CounterResponse
	(*ListCountersResponse)(nil),  // 5: admin.v1.ListCountersResponse
}
var file_admin_proto_depIdxs = []int32{
	4, // 0: admin.v1.ListCountersResponse.counters:type_name -> admin.v1.CounterResponse
	0, // 1: admin.v1.CounterAdminService.CreateCounter:input_type -> admin.v1.CreateCounterRequest
	1, // 2: admin.v1.CounterAdminService.RenameCounter:input_type -> admin.v1.RenameCounterRequest
	2, // 3: admin.v1.CounterAdminService.ListCounters:input_type -> admin.v1.ListCountersRequest
	3, // 4: admin.v1.CounterAdminService.SearchCounters:input_type -> admin.v1.SearchCountersRequest
	4, // 5: admin.v1.CounterAdminService.CreateCounter:output_type -> admin.v1.CounterResponse
	4, // 6: admin.v1.CounterAdminService.RenameCounter:output_type -> admin.v1.CounterResponse
	5, // 7: admin.v1.CounterAdminService.ListCounters:output_type -> admin.v1.ListCountersResponse
	5, // 8: admin.v1.CounterAdminService.SearchCounters:output_type -> admin.v1.ListCountersResponse
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_admin_proto_init() }
func file_admin_proto_init() {
	if File_admin_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_admin_proto_rawDesc), len(file_admin_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_admin_proto_goTypes,
		DependencyIndexes: file_admin_proto_depIdxs,
		MessageInfos:      file_admin_proto_msgTypes,
	}.Build()
	File_admin_proto = out.File
	file_admin_proto_goTypes = nil
	file_admin_proto_depIdxs = nil
}
