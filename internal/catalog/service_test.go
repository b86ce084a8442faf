package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/sportshoplabs/sportshop-backend/pkg/errors"
)

func TestServiceGetProductTranslatesNotFound(t *testing.T) {
	svc, err := NewService(seedRepo(t))
	require.NoError(t, err)

	_, err = svc.GetProduct(context.Background(), "missing")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceSearchProducts(t *testing.T) {
	svc, err := NewService(seedRepo(t))
	require.NoError(t, err)

	products, err := svc.SearchProducts(context.Background(), "bike")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p3", products[0].ID)
}

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)
}
