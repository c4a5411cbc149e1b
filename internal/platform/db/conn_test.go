package db

import (
	"context"
	"testing"
)

func TestConnFromContext_Nil(t *testing.T) {
	if c := ConnFromContext(context.Background()); c != nil {
		t.Error("expected nil for context without connection")
	}
}

func TestConnFromContext_WithWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ConnKey, "not-a-conn")
	if c := ConnFromContext(ctx); c != nil {
		t.Error("expected nil for wrong value type")
	}
}

func TestTxFromContext_Nil(t *testing.T) {
	if tx := TxFromContext(context.Background()); tx != nil {
		t.Error("expected nil for context without transaction")
	}
}

func TestTxFromContext_WithWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TxKey, 42)
	if tx := TxFromContext(ctx); tx != nil {
		t.Error("expected nil for wrong value type")
	}
}

func TestWithTx_NoConnection(t *testing.T) {
	err := WithTx(context.Background(), func(context.Context) error { return nil })
	if err == nil {
		t.Error("expected error when no connection is bound to the context")
	}
}
