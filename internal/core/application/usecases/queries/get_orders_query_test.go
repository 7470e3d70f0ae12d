package queries_test

import (
	"testing"

	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(kernel.NewUUID(), "pending", false)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "pending", query.StatusFilter())
}

func TestNewGetOrdersQuery_EmptyFilterIsValid(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(kernel.NewUUID(), "", true)
	require.NoError(t, err)
	assert.Empty(t, query.StatusFilter())
	assert.True(t, query.UnassignedOnly())
}

func TestNewGetOrdersQuery_MissingOrganization(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(kernel.UUID{}, "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
