// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

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

type Invoice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	SourcePath    string                 `protobuf:"bytes,3,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,4,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC 3339
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	VendorName    string                 `protobuf:"bytes,6,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,7,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,8,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD
	TotalAmount   float64                `protobuf:"fixed64,9,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	HasAmount     bool                   `protobuf:"varint,10,opt,name=has_amount,json=hasAmount,proto3" json:"has_amount,omitempty"`
	Discrepancies []*Discrepancy         `protobuf:"bytes,11,rep,name=discrepancies,proto3" json:"discrepancies,omitempty"`
	ContractId    string                 `protobuf:"bytes,12,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	ApprovedBy    string                 `protobuf:"bytes,13,opt,name=approved_by,json=approvedBy,proto3" json:"approved_by,omitempty"`
	ApprovalTime  string                 `protobuf:"bytes,14,opt,name=approval_time,json=approvalTime,proto3" json:"approval_time,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Invoice) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *Invoice) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Invoice) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Invoice) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *Invoice) GetHasAmount() bool {
	if x != nil {
		return x.HasAmount
	}
	return false
}

func (x *Invoice) GetDiscrepancies() []*Discrepancy {
	if x != nil {
		return x.Discrepancies
	}
	return nil
}

func (x *Invoice) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *Invoice) GetApprovedBy() string {
	if x != nil {
		return x.ApprovedBy
	}
	return ""
}

func (x *Invoice) GetApprovalTime() string {
	if x != nil {
		return x.ApprovalTime
	}
	return ""
}

type Discrepancy struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Severity      string                 `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Field         string                 `protobuf:"bytes,4,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Discrepancy) Reset() {
	*x = Discrepancy{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Discrepancy) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Discrepancy) ProtoMessage() {}

func (x *Discrepancy) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Discrepancy.ProtoReflect.Descriptor instead.
func (*Discrepancy) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *Discrepancy) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Discrepancy) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *Discrepancy) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Discrepancy) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

type AuditLogEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	InvoiceId     string                 `protobuf:"bytes,2,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	Timestamp     string                 `protobuf:"bytes,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"` // RFC 3339
	Action        string                 `protobuf:"bytes,4,opt,name=action,proto3" json:"action,omitempty"`
	Details       string                 `protobuf:"bytes,5,opt,name=details,proto3" json:"details,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuditLogEntry) Reset() {
	*x = AuditLogEntry{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuditLogEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuditLogEntry) ProtoMessage() {}

func (x *AuditLogEntry) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuditLogEntry.ProtoReflect.Descriptor instead.
func (*AuditLogEntry) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *AuditLogEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AuditLogEntry) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *AuditLogEntry) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

func (x *AuditLogEntry) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *AuditLogEntry) GetDetails() string {
	if x != nil {
		return x.Details
	}
	return ""
}

type CreateInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	SourcePath    string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Process       bool                   `protobuf:"varint,3,opt,name=process,proto3" json:"process,omitempty"` // enqueue for processing immediately
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInvoiceRequest) Reset() {
	*x = CreateInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInvoiceRequest) ProtoMessage() {}

func (x *CreateInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInvoiceRequest.ProtoReflect.Descriptor instead.
func (*CreateInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *CreateInvoiceRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *CreateInvoiceRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *CreateInvoiceRequest) GetProcess() bool {
	if x != nil {
		return x.Process
	}
	return false
}

type CreateInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	Queued        bool                   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateInvoiceResponse) Reset() {
	*x = CreateInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateInvoiceResponse) ProtoMessage() {}

func (x *CreateInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateInvoiceResponse.ProtoReflect.Descriptor instead.
func (*CreateInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *CreateInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

func (x *CreateInvoiceResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ProcessInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInvoiceRequest) Reset() {
	*x = ProcessInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInvoiceRequest) ProtoMessage() {}

func (x *ProcessInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ProcessInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type ProcessInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Action        string                 `protobuf:"bytes,3,opt,name=action,proto3" json:"action,omitempty"`
	MatchedRule   string                 `protobuf:"bytes,4,opt,name=matched_rule,json=matchedRule,proto3" json:"matched_rule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessInvoiceResponse) Reset() {
	*x = ProcessInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessInvoiceResponse) ProtoMessage() {}

func (x *ProcessInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ProcessInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *ProcessInvoiceResponse) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *ProcessInvoiceResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessInvoiceResponse) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *ProcessInvoiceResponse) GetMatchedRule() string {
	if x != nil {
		return x.MatchedRule
	}
	return ""
}

type GetInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceRequest) Reset() {
	*x = GetInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceRequest) ProtoMessage() {}

func (x *GetInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

func (x *GetInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type GetInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceResponse) Reset() {
	*x = GetInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceResponse) ProtoMessage() {}

func (x *GetInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceResponse.ProtoReflect.Descriptor instead.
func (*GetInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *GetInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                     // optional filter
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *ListInvoicesRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{10}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type GetAuditTrailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAuditTrailRequest) Reset() {
	*x = GetAuditTrailRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAuditTrailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAuditTrailRequest) ProtoMessage() {}

func (x *GetAuditTrailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAuditTrailRequest.ProtoReflect.Descriptor instead.
func (*GetAuditTrailRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{11}
}

func (x *GetAuditTrailRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type GetAuditTrailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*AuditLogEntry       `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAuditTrailResponse) Reset() {
	*x = GetAuditTrailResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAuditTrailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAuditTrailResponse) ProtoMessage() {}

func (x *GetAuditTrailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAuditTrailResponse.ProtoReflect.Descriptor instead.
func (*GetAuditTrailResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{12}
}

func (x *GetAuditTrailResponse) GetEntries() []*AuditLogEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ApproveInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	ApproverId    string                 `protobuf:"bytes,2,opt,name=approver_id,json=approverId,proto3" json:"approver_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveInvoiceRequest) Reset() {
	*x = ApproveInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveInvoiceRequest) ProtoMessage() {}

func (x *ApproveInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveInvoiceRequest.ProtoReflect.Descriptor instead.
func (*ApproveInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{13}
}

func (x *ApproveInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *ApproveInvoiceRequest) GetApproverId() string {
	if x != nil {
		return x.ApproverId
	}
	return ""
}

type ApproveInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveInvoiceResponse) Reset() {
	*x = ApproveInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveInvoiceResponse) ProtoMessage() {}

func (x *ApproveInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveInvoiceResponse.ProtoReflect.Descriptor instead.
func (*ApproveInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{14}
}

func (x *ApproveInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type RejectInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	ApproverId    string                 `protobuf:"bytes,2,opt,name=approver_id,json=approverId,proto3" json:"approver_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectInvoiceRequest) Reset() {
	*x = RejectInvoiceRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectInvoiceRequest) ProtoMessage() {}

func (x *RejectInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectInvoiceRequest.ProtoReflect.Descriptor instead.
func (*RejectInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{15}
}

func (x *RejectInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *RejectInvoiceRequest) GetApproverId() string {
	if x != nil {
		return x.ApproverId
	}
	return ""
}

type RejectInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectInvoiceResponse) Reset() {
	*x = RejectInvoiceResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectInvoiceResponse) ProtoMessage() {}

func (x *RejectInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectInvoiceResponse.ProtoReflect.Descriptor instead.
func (*RejectInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{16}
}

func (x *RejectInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                     // optional filter
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{17}
}

func (x *ExportInvoicesRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{18}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportAuditTrailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditTrailRequest) Reset() {
	*x = ExportAuditTrailRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditTrailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditTrailRequest) ProtoMessage() {}

func (x *ExportAuditTrailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditTrailRequest.ProtoReflect.Descriptor instead.
func (*ExportAuditTrailRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{19}
}

func (x *ExportAuditTrailRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type ExportAuditTrailResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditTrailResponse) Reset() {
	*x = ExportAuditTrailResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditTrailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditTrailResponse) ProtoMessage() {}

func (x *ExportAuditTrailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditTrailResponse.ProtoReflect.Descriptor instead.
func (*ExportAuditTrailResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{20}
}

func (x *ExportAuditTrailResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\"\xe4\x03\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x1f\n" +
	"\vsource_path\x18\x03 \x01(\tR\n" +
	"sourcePath\x12\x1f\n" +
	"\vuploaded_at\x18\x04 \x01(\tR\n" +
	"uploadedAt\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1f\n" +
	"\vvendor_name\x18\x06 \x01(\tR\n" +
	"vendorName\x12%\n" +
	"\x0einvoice_number\x18\a \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\b \x01(\tR\vinvoiceDate\x12!\n" +
	"\ftotal_amount\x18\t \x01(\x01R\vtotalAmount\x12\x1d\n" +
	"\n" +
	"has_amount\x18\n" +
	" \x01(\bR\thasAmount\x12>\n" +
	"\rdiscrepancies\x18\v \x03(\v2\x18.invoices.v1.DiscrepancyR\rdiscrepancies\x12\x1f\n" +
	"\vcontract_id\x18\f \x01(\tR\n" +
	"contractId\x12\x1f\n" +
	"\vapproved_by\x18\r \x01(\tR\n" +
	"approvedBy\x12#\n" +
	"\rapproval_time\x18\x0e \x01(\tR\fapprovalTime\"u\n" +
	"\vDiscrepancy\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x1a\n" +
	"\bseverity\x18\x02 \x01(\tR\bseverity\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x14\n" +
	"\x05field\x18\x04 \x01(\tR\x05field\"\x8e\x01\n" +
	"\rAuditLogEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x02 \x01(\tR\tinvoiceId\x12\x1c\n" +
	"\ttimestamp\x18\x03 \x01(\tR\ttimestamp\x12\x16\n" +
	"\x06action\x18\x04 \x01(\tR\x06action\x12\x18\n" +
	"\adetails\x18\x05 \x01(\tR\adetails\"n\n" +
	"\x14CreateInvoiceRequest\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x18\n" +
	"\aprocess\x18\x03 \x01(\bR\aprocess\"_\n" +
	"\x15CreateInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\bR\x06queued\"6\n" +
	"\x15ProcessInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"\x8a\x01\n" +
	"\x16ProcessInvoiceResponse\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x16\n" +
	"\x06action\x18\x03 \x01(\tR\x06action\x12!\n" +
	"\fmatched_rule\x18\x04 \x01(\tR\vmatchedRule\"2\n" +
	"\x11GetInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"D\n" +
	"\x12GetInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"c\n" +
	"\x13ListInvoicesRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"H\n" +
	"\x14ListInvoicesResponse\x120\n" +
	"\binvoices\x18\x01 \x03(\v2\x14.invoices.v1.InvoiceR\binvoices\"5\n" +
	"\x14GetAuditTrailRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"M\n" +
	"\x15GetAuditTrailResponse\x124\n" +
	"\aentries\x18\x01 \x03(\v2\x1a.invoices.v1.AuditLogEntryR\aentries\"W\n" +
	"\x15ApproveInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x12\x1f\n" +
	"\vapprover_id\x18\x02 \x01(\tR\n" +
	"approverId\"H\n" +
	"\x16ApproveInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"V\n" +
	"\x14RejectInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\x12\x1f\n" +
	"\vapprover_id\x18\x02 \x01(\tR\n" +
	"approverId\"G\n" +
	"\x15RejectInvoiceResponse\x12.\n" +
	"\ainvoice\x18\x01 \x01(\v2\x14.invoices.v1.InvoiceR\ainvoice\"e\n" +
	"\x15ExportInvoicesRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"8\n" +
	"\x17ExportAuditTrailRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\".\n" +
	"\x18ExportAuditTrailResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xf3\x04\n" +
	"\x0fInvoicesService\x12V\n" +
	"\rCreateInvoice\x12!.invoices.v1.CreateInvoiceRequest\x1a\".invoices.v1.CreateInvoiceResponse\x12Y\n" +
	"\x0eProcessInvoice\x12\".invoices.v1.ProcessInvoiceRequest\x1a#.invoices.v1.ProcessInvoiceResponse\x12M\n" +
	"\n" +
	"GetInvoice\x12\x1e.invoices.v1.GetInvoiceRequest\x1a\x1f.invoices.v1.GetInvoiceResponse\x12S\n" +
	"\fListInvoices\x12 .invoices.v1.ListInvoicesRequest\x1a!.invoices.v1.ListInvoicesResponse\x12V\n" +
	"\rGetAuditTrail\x12!.invoices.v1.GetAuditTrailRequest\x1a\".invoices.v1.GetAuditTrailResponse\x12Y\n" +
	"\x0eApproveInvoice\x12\".invoices.v1.ApproveInvoiceRequest\x1a#.invoices.v1.ApproveInvoiceResponse\x12V\n" +
	"\rRejectInvoice\x12!.invoices.v1.RejectInvoiceRequest\x1a\".invoices.v1.RejectInvoiceResponse2\xcb\x01\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportInvoices\x12\".invoices.v1.ExportInvoicesRequest\x1a#.invoices.v1.ExportInvoicesResponse\x12_\n" +
	"\x10ExportAuditTrail\x12$.invoices.v1.ExportAuditTrailRequest\x1a%.invoices.v1.ExportAuditTrailResponseBAZ?github.com/docuflow/invoice-pipeline/gen/invoices/v1;invoicesv1b\x06proto3"

var (
	file_invoices_v1_invoices_proto_rawDescOnce sync.Once
	file_invoices_v1_invoices_proto_rawDescData []byte
)

func file_invoices_v1_invoices_proto_rawDescGZIP() []byte {
	file_invoices_v1_invoices_proto_rawDescOnce.Do(func() {
		file_invoices_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)))
	})
	return file_invoices_v1_invoices_proto_rawDescData
}

var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(*Invoice)(nil),                  // 0: invoices.v1.Invoice
	(*Discrepancy)(nil),              // 1: invoices.v1.Discrepancy
	(*AuditLogEntry)(nil),            // 2: invoices.v1.AuditLogEntry
	(*CreateInvoiceRequest)(nil),     // 3: invoices.v1.CreateInvoiceRequest
	(*CreateInvoiceResponse)(nil),    // 4: invoices.v1.CreateInvoiceResponse
	(*ProcessInvoiceRequest)(nil),    // 5: invoices.v1.ProcessInvoiceRequest
	(*ProcessInvoiceResponse)(nil),   // 6: invoices.v1.ProcessInvoiceResponse
	(*GetInvoiceRequest)(nil),        // 7: invoices.v1.GetInvoiceRequest
	(*GetInvoiceResponse)(nil),       // 8: invoices.v1.GetInvoiceResponse
	(*ListInvoicesRequest)(nil),      // 9: invoices.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),     // 10: invoices.v1.ListInvoicesResponse
	(*GetAuditTrailRequest)(nil),     // 11: invoices.v1.GetAuditTrailRequest
	(*GetAuditTrailResponse)(nil),    // 12: invoices.v1.GetAuditTrailResponse
	(*ApproveInvoiceRequest)(nil),    // 13: invoices.v1.ApproveInvoiceRequest
	(*ApproveInvoiceResponse)(nil),   // 14: invoices.v1.ApproveInvoiceResponse
	(*RejectInvoiceRequest)(nil),     // 15: invoices.v1.RejectInvoiceRequest
	(*RejectInvoiceResponse)(nil),    // 16: invoices.v1.RejectInvoiceResponse
	(*ExportInvoicesRequest)(nil),    // 17: invoices.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil),   // 18: invoices.v1.ExportInvoicesResponse
	(*ExportAuditTrailRequest)(nil),  // 19: invoices.v1.ExportAuditTrailRequest
	(*ExportAuditTrailResponse)(nil), // 20: invoices.v1.ExportAuditTrailResponse
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	1,  // 0: invoices.v1.Invoice.discrepancies:type_name -> invoices.v1.Discrepancy
	0,  // 1: invoices.v1.CreateInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 2: invoices.v1.GetInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 3: invoices.v1.ListInvoicesResponse.invoices:type_name -> invoices.v1.Invoice
	2,  // 4: invoices.v1.GetAuditTrailResponse.entries:type_name -> invoices.v1.AuditLogEntry
	0,  // 5: invoices.v1.ApproveInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	0,  // 6: invoices.v1.RejectInvoiceResponse.invoice:type_name -> invoices.v1.Invoice
	3,  // 7: invoices.v1.InvoicesService.CreateInvoice:input_type -> invoices.v1.CreateInvoiceRequest
	5,  // 8: invoices.v1.InvoicesService.ProcessInvoice:input_type -> invoices.v1.ProcessInvoiceRequest
	7,  // 9: invoices.v1.InvoicesService.GetInvoice:input_type -> invoices.v1.GetInvoiceRequest
	9,  // 10: invoices.v1.InvoicesService.ListInvoices:input_type -> invoices.v1.ListInvoicesRequest
	11, // 11: invoices.v1.InvoicesService.GetAuditTrail:input_type -> invoices.v1.GetAuditTrailRequest
	13, // 12: invoices.v1.InvoicesService.ApproveInvoice:input_type -> invoices.v1.ApproveInvoiceRequest
	15, // 13: invoices.v1.InvoicesService.RejectInvoice:input_type -> invoices.v1.RejectInvoiceRequest
	17, // 14: invoices.v1.ExportService.ExportInvoices:input_type -> invoices.v1.ExportInvoicesRequest
	19, // 15: invoices.v1.ExportService.ExportAuditTrail:input_type -> invoices.v1.ExportAuditTrailRequest
	4,  // 16: invoices.v1.InvoicesService.CreateInvoice:output_type -> invoices.v1.CreateInvoiceResponse
	6,  // 17: invoices.v1.InvoicesService.ProcessInvoice:output_type -> invoices.v1.ProcessInvoiceResponse
	8,  // 18: invoices.v1.InvoicesService.GetInvoice:output_type -> invoices.v1.GetInvoiceResponse
	10, // 19: invoices.v1.InvoicesService.ListInvoices:output_type -> invoices.v1.ListInvoicesResponse
	12, // 20: invoices.v1.InvoicesService.GetAuditTrail:output_type -> invoices.v1.GetAuditTrailResponse
	14, // 21: invoices.v1.InvoicesService.ApproveInvoice:output_type -> invoices.v1.ApproveInvoiceResponse
	16, // 22: invoices.v1.InvoicesService.RejectInvoice:output_type -> invoices.v1.RejectInvoiceResponse
	18, // 23: invoices.v1.ExportService.ExportInvoices:output_type -> invoices.v1.ExportInvoicesResponse
	20, // 24: invoices.v1.ExportService.ExportAuditTrail:output_type -> invoices.v1.ExportAuditTrailResponse
	16, // [16:25] is the sub-list for method output_type
	7,  // [7:16] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_invoices_v1_invoices_proto_init() }
func file_invoices_v1_invoices_proto_init() {
	if File_invoices_v1_invoices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}
