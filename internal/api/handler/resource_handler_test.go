package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
	"github.com/hrmsystem/hrm-api/internal/core/ports"
)

type stubDepartmentService struct {
	created  *ports.DepartmentInput
	statusID string
	items    []*domain.Department
	err      error
}

func (s *stubDepartmentService) Create(_ context.Context, in ports.DepartmentInput) (*domain.Department, error) {
	s.created = &in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Department{Record: domain.Record{ID: "d1", Status: domain.StatusActive}, Name: in.Name, Code: in.Code}, nil
}

func (s *stubDepartmentService) List(context.Context) ([]*domain.Department, error) {
	if len(s.items) == 0 {
		return nil, domain.ErrDepartmentsEmpty
	}
	return s.items, nil
}

func (s *stubDepartmentService) Get(_ context.Context, id string) (*domain.Department, error) {
	return nil, domain.ErrDepartmentNotFound
}

func (s *stubDepartmentService) Update(_ context.Context, id string, in ports.DepartmentInput) (*domain.Department, error) {
	return &domain.Department{Record: domain.Record{ID: id}, Name: in.Name, Code: in.Code}, nil
}

func (s *stubDepartmentService) ChangeStatus(_ context.Context, id string, status domain.Status) (*domain.Department, error) {
	s.statusID = id
	if status != "" {
		return nil, errors.New("toggle resources must not receive a status")
	}
	return &domain.Department{Record: domain.Record{ID: id, Status: domain.StatusInactive}}, nil
}

func (s *stubDepartmentService) Delete(context.Context, string) error { return nil }

func TestDepartmentHandler_Create(t *testing.T) {
	stub := &stubDepartmentService{}
	c, rec := newTestContext(http.MethodPost, "/api/department", `{"name":"Sistemas","code":"TI000034"}`)

	if err := NewDepartmentHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Message    string            `json:"message"`
		Department domain.Department `json:"department"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Created department successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Department.ID != "d1" || resp.Department.Code != "TI000034" {
		t.Fatalf("unexpected department: %+v", resp.Department)
	}
}

func TestDepartmentHandler_Create_InvalidCode(t *testing.T) {
	stub := &stubDepartmentService{}
	c, _ := newTestContext(http.MethodPost, "/api/department", `{"name":"Sistemas","code":"TI34"}`)

	err := NewDepartmentHandler(stub).Create(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stub.created != nil {
		t.Fatalf("service must not be called on invalid input")
	}
}

func TestDepartmentHandler_List(t *testing.T) {
	stub := &stubDepartmentService{}
	c, _ := newTestContext(http.MethodGet, "/api/department", "")
	if err := NewDepartmentHandler(stub).List(c); !errors.Is(err, domain.ErrDepartmentsEmpty) {
		t.Fatalf("expected ErrDepartmentsEmpty, got %v", err)
	}

	stub.items = []*domain.Department{{Name: "Sistemas"}}
	c, rec := newTestContext(http.MethodGet, "/api/department", "")
	if err := NewDepartmentHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string][]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp["departments"]) != 1 {
		t.Fatalf("expected one department, got %+v", resp)
	}
}

func TestDepartmentHandler_ChangeStatus(t *testing.T) {
	stub := &stubDepartmentService{}
	c, rec := newTestContext(http.MethodPut, "/api/department/d1/status", "")
	c.SetParamNames("id")
	c.SetParamValues("d1")

	if err := NewDepartmentHandler(stub).ChangeStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.statusID != "d1" {
		t.Fatalf("expected id d1, got %q", stub.statusID)
	}
	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Status change to INACTIVE" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestDepartmentHandler_Delete(t *testing.T) {
	c, rec := newTestContext(http.MethodDelete, "/api/department/d1", "")
	c.SetParamNames("id")
	c.SetParamValues("d1")

	if err := NewDepartmentHandler(&stubDepartmentService{}).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

type stubLeaveService struct {
	ports.LeaveService
	status domain.Status
}

func (s *stubLeaveService) ChangeStatus(_ context.Context, id string, status domain.Status) (*domain.Leave, error) {
	s.status = status
	l := &domain.Leave{}
	l.ID, l.Status = id, status
	return l, nil
}

func TestLeaveHandler_ChangeStatusReadsBody(t *testing.T) {
	stub := &stubLeaveService{}
	c, rec := newTestContext(http.MethodPut, "/api/leave/l1/status", `{"status":"APPROVED"}`)
	c.SetParamNames("id")
	c.SetParamValues("l1")

	if err := NewLeaveHandler(stub).ChangeStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.status != domain.StatusApproved {
		t.Fatalf("expected APPROVED to reach the service, got %q", stub.status)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newTestContext(http.MethodPut, "/api/leave/l1/status", `{}`)
	if err := NewLeaveHandler(stub).ChangeStatus(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing status, got %v", err)
	}
}
