package proto

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Request and response field names of CreateWorkerAccount.
const (
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldWorkerData    = "workerData"
	FieldUserData      = "userData"
	FieldSuccess       = "success"
	FieldWorkerUID     = "workerUid"
	FieldWorkerID      = "workerId"
	FieldMessage       = "message"
	FieldAlreadyExists = "alreadyExists"
	FieldStatus        = "status"
)

// CreateWorkerAccountRequest is the Go view of the request Struct.
// Nil maps are left out of the wire message entirely.
type CreateWorkerAccountRequest struct {
	Email      string
	Password   string
	WorkerData map[string]any
	UserData   map[string]any
}

// CreateWorkerAccountResponse is the Go view of the response Struct.
type CreateWorkerAccountResponse struct {
	Success       bool
	WorkerUID     string
	WorkerID      string
	Message       string
	AlreadyExists bool
}

func (r *CreateWorkerAccountRequest) ToStruct() (*structpb.Struct, error) {
	m := map[string]any{
		FieldEmail:    r.Email,
		FieldPassword: r.Password,
	}
	if r.WorkerData != nil {
		m[FieldWorkerData] = r.WorkerData
	}
	if r.UserData != nil {
		m[FieldUserData] = r.UserData
	}
	return structpb.NewStruct(m)
}

// CreateWorkerAccountRequestFromStruct decodes s leniently: a field of the
// wrong type is treated as absent, leaving validation to the service.
func CreateWorkerAccountRequestFromStruct(s *structpb.Struct) *CreateWorkerAccountRequest {
	req := &CreateWorkerAccountRequest{}
	if s == nil {
		return req
	}
	f := s.GetFields()
	req.Email = f[FieldEmail].GetStringValue()
	req.Password = f[FieldPassword].GetStringValue()
	if v := f[FieldWorkerData].GetStructValue(); v != nil {
		req.WorkerData = v.AsMap()
	}
	if v := f[FieldUserData].GetStructValue(); v != nil {
		req.UserData = v.AsMap()
	}
	return req
}

func (r *CreateWorkerAccountResponse) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldSuccess:       structpb.NewBoolValue(r.Success),
		FieldWorkerUID:     structpb.NewStringValue(r.WorkerUID),
		FieldWorkerID:      structpb.NewStringValue(r.WorkerID),
		FieldMessage:       structpb.NewStringValue(r.Message),
		FieldAlreadyExists: structpb.NewBoolValue(r.AlreadyExists),
	}}
}

func CreateWorkerAccountResponseFromStruct(s *structpb.Struct) *CreateWorkerAccountResponse {
	f := s.GetFields()
	return &CreateWorkerAccountResponse{
		Success:       f[FieldSuccess].GetBoolValue(),
		WorkerUID:     f[FieldWorkerUID].GetStringValue(),
		WorkerID:      f[FieldWorkerID].GetStringValue(),
		Message:       f[FieldMessage].GetStringValue(),
		AlreadyExists: f[FieldAlreadyExists].GetBoolValue(),
	}
}
