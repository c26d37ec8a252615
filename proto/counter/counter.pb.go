// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: counter.proto

package counter

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

type JoinRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinRequest) Reset() {
	*x = JoinRequest{}
	mi := &file_counter_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinRequest) ProtoMessage() {}

func (x *JoinRequest) ProtoReflect() protoreflect.Message {
	mi := &file_counter_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinRequest.ProtoReflect.Descriptor instead.
func (*JoinRequest) Descriptor() ([]byte, []int) {
	return file_counter_proto_rawDescGZIP(), []int{0}
}

func (x *JoinRequest) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

type CounterEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*CounterEvent_Ack
	//	*CounterEvent_Increment
	Event         isCounterEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CounterEvent) Reset() {
	*x = CounterEvent{}
	mi := &file_counter_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CounterEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CounterEvent) ProtoMessage() {}

func (x *CounterEvent) ProtoReflect() protoreflect.Message {
	mi := &file_counter_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CounterEvent.ProtoReflect.Descriptor instead.
func (*CounterEvent) Descriptor() ([]byte, []int) {
	return file_counter_proto_rawDescGZIP(), []int{1}
}

func (x *CounterEvent) GetEvent() isCounterEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *CounterEvent) GetAck() *JoinAck {
	if x != nil {
		if x, ok := x.Event.(*CounterEvent_Ack); ok {
			return x.Ack
		}
	}
	return nil
}

func (x *CounterEvent) GetIncrement() *IncrementEvent {
	if x != nil {
		if x, ok := x.Event.(*CounterEvent_Increment); ok {
			return x.Increment
		}
	}
	return nil
}

type isCounterEvent_Event interface {
	isCounterEvent_Event()
}

type CounterEvent_Ack struct {
	Ack *JoinAck `protobuf:"bytes,1,opt,name=ack,proto3,oneof"`
}

type CounterEvent_Increment struct {
	Increment *IncrementEvent `protobuf:"bytes,2,opt,name=increment,proto3,oneof"`
}

func (*CounterEvent_Ack) isCounterEvent_Event() {}

func (*CounterEvent_Increment) isCounterEvent_Event() {}

// JoinAck is the single reply to one JoinRequest, delivered to the caller
// only. ok=false is the failure marker: the caller is not subscribed and the
// counter is unchanged.
type JoinAck struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	Ok            bool                   `protobuf:"varint,2,opt,name=ok,proto3" json:"ok,omitempty"`
	Value         int64                  `protobuf:"varint,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinAck) Reset() {
	*x = JoinAck{}
	mi := &file_counter_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinAck) ProtoMessage() {}

func (x *JoinAck) ProtoReflect() protoreflect.Message {
	mi := &file_counter_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinAck.ProtoReflect.Descriptor instead.
func (*JoinAck) Descriptor() ([]byte, []int) {
	return file_counter_proto_rawDescGZIP(), []int{2}
}

func (x *JoinAck) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *JoinAck) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *JoinAck) GetValue() int64 {
	if x != nil {
		return x.Value
	}
	return 0
}

// IncrementEvent carries the post-increment value to every room member.
type IncrementEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RoomId        string                 `protobuf:"bytes,1,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	Value         int64                  `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IncrementEvent) Reset() {
	*x = IncrementEvent{}
	mi := &file_counter_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IncrementEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IncrementEvent) ProtoMessage() {}

func (x *IncrementEvent) ProtoReflect() protoreflect.Message {
	mi := &file_counter_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IncrementEvent.ProtoReflect.Descriptor instead.
func (*IncrementEvent) Descriptor() ([]byte, []int) {
	return file_counter_proto_rawDescGZIP(), []int{3}
}

func (x *IncrementEvent) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *IncrementEvent) GetValue() int64 {
	if x != nil {
		return x.Value
	}
	return 0
}

var File_counter_proto protoreflect.FileDescriptor

const file_counter_proto_rawDesc = "" +
	"\n" +
	"\rcounter.proto\x12\n" +
	"counter.v1\"&\n" +
	"\vJoinRequest\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\"|\n" +
	"\fCounterEvent\x12'\n" +
	"\x03ack\x18\x01 \x01(\v2\x13.counter.v1.JoinAckH\x00R\x03ack\x12:\n" +
	"\tincrement\x18\x02 \x01(\v2\x1a.counter.v1.IncrementEventH\x00R\tincrementB\a\n" +
	"\x05event\"H\n" +
	"\aJoinAck\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x0e\n" +
	"\x02ok\x18\x02 \x01(\bR\x02ok\x12\x14\n" +
	"\x05value\x18\x03 \x01(\x03R\x05value\"?\n" +
	"\x0eIncrementEvent\x12\x17\n" +
	"\aroom_id\x18\x01 \x01(\tR\x06roomId\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x03R\x05value2R\n" +
	"\x0eCounterService\x12@\n" +
	"\aConnect\x12\x17.counter.v1.JoinRequest\x1a\x18.counter.v1.CounterEvent(\x010\x01B\x1bZ\x19counter-lab/proto/counterb\x06proto3"

var (
	file_counter_proto_rawDescOnce sync.Once
	file_counter_proto_rawDescData []byte
)

func file_counter_proto_rawDescGZIP() []byte {
	file_counter_proto_rawDescOnce.Do(func() {
		file_counter_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_counter_proto_rawDesc), len(file_counter_proto_rawDesc)))
	})
	return file_counter_proto_rawDescData
}

var file_counter_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_counter_proto_goTypes = []any{
	(*JoinRequest)(nil),    // 0: counter.v1.JoinRequest
	(*CounterEvent)(nil),   // 1: counter.v1.CounterEvent
	(*JoinAck)(nil),        // 2: counter.v1.JoinAck
	(*IncrementEvent)(nil), // 3: counter.v1.IncrementEvent
}
var file_counter_proto_depIdxs = []int32{
	2, // 0: counter.v1.CounterEvent.ack:type_name -> counter.v1.JoinAck
	3, // 1: counter.v1.CounterEvent.increment:type_name -> counter.v1.IncrementEvent
	0, // 2: counter.v1.CounterService.Connect:input_type -> counter.v1.JoinRequest
	1, // 3: counter.v1.CounterService.Connect:output_type -> counter.v1.CounterEvent
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_counter_proto_init() }
func file_counter_proto_init() {
	if File_counter_proto != nil {
		return
	}
	file_counter_proto_msgTypes[1].OneofWrappers = []any{
		(*CounterEvent_Ack)(nil),
		(*CounterEvent_Increment)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_counter_proto_rawDesc), len(file_counter_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_counter_proto_goTypes,
		DependencyIndexes: file_counter_proto_depIdxs,
		MessageInfos:      file_counter_proto_msgTypes,
	}.Build()
	File_counter_proto = out.File
	file_counter_proto_goTypes = nil
	file_counter_proto_depIdxs = nil
}
