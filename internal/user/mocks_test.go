package user

import (
	"context"

	"github.com/CreativeMB/Server/internal/directory"
	"github.com/CreativeMB/Server/internal/docs"
	"github.com/CreativeMB/Server/internal/presence"
)

type directoryMock struct {
	deleteFunc func(ctx context.Context, uid string) error
	findFunc   func(ctx context.Context, email string) (*directory.UserRecord, error)

	deleteCalls int
	findCalls   int
}

func (m *directoryMock) DeleteUser(ctx context.Context, uid string) error {
	m.deleteCalls++
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(ctx, uid)
}

func (m *directoryMock) FindByEmail(ctx context.Context, email string) (*directory.UserRecord, error) {
	m.findCalls++
	if m.findFunc == nil {
		return nil, directory.ErrNotFound
	}
	return m.findFunc(ctx, email)
}

type presenceMock struct {
	getFunc     func(ctx context.Context, path string) (*presence.Record, error)
	removeFunc  func(ctx context.Context, path string) error
	listAllFunc func(ctx context.Context, collection string) ([]presence.Entry, error)

	getCalls    int
	removeCalls int
	listCalls   int
	removedPath string
}

func (m *presenceMock) Get(ctx context.Context, path string) (*presence.Record, error) {
	m.getCalls++
	if m.getFunc == nil {
		return nil, nil
	}
	return m.getFunc(ctx, path)
}

func (m *presenceMock) Remove(ctx context.Context, path string) error {
	m.removeCalls++
	m.removedPath = path
	if m.removeFunc == nil {
		return nil
	}
	return m.removeFunc(ctx, path)
}

func (m *presenceMock) ListAll(ctx context.Context, collection string) ([]presence.Entry, error) {
	m.listCalls++
	if m.listAllFunc == nil {
		return nil, nil
	}
	return m.listAllFunc(ctx, collection)
}

type docsMock struct {
	getFunc         func(ctx context.Context, collection, id string) (*docs.Doc, error)
	deleteFunc      func(ctx context.Context, collection, id string) error
	queryFunc       func(ctx context.Context, collection, field, value string) ([]docs.Doc, error)
	batchDeleteFunc func(ctx context.Context, refs []docs.Ref) error

	deleteCalls int
	queryCalls  int
	batchCalls  int
	batchRefs   []docs.Ref
	deletedDocs []string
}

func (m *docsMock) GetDoc(ctx context.Context, collection, id string) (*docs.Doc, error) {
	if m.getFunc == nil {
		return nil, nil
	}
	return m.getFunc(ctx, collection, id)
}

func (m *docsMock) DeleteDoc(ctx context.Context, collection, id string) error {
	m.deleteCalls++
	m.deletedDocs = append(m.deletedDocs, collection+"/"+id)
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(ctx, collection, id)
}

func (m *docsMock) Query(ctx context.Context, collection, field, value string) ([]docs.Doc, error) {
	m.queryCalls++
	if m.queryFunc == nil {
		return nil, nil
	}
	return m.queryFunc(ctx, collection, field, value)
}

func (m *docsMock) BatchDelete(ctx context.Context, refs []docs.Ref) error {
	m.batchCalls++
	m.batchRefs = refs
	if m.batchDeleteFunc == nil {
		return nil
	}
	return m.batchDeleteFunc(ctx, refs)
}
