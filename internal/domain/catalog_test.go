package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	cat := DefaultCatalog()
	require.NoError(t, cat.Check())

	for _, name := range []string{"customer", "skill", "user", "office", "assignment", "file"} {
		c, err := cat.Lookup(name)
		require.NoError(t, err, name)
		assert.False(t, c.IsConnector(), name)
		assert.NotNil(t, c.New(), name)
	}

	conn, err := cat.Lookup("skillToSkillGroupConnector")
	require.NoError(t, err)
	assert.True(t, conn.IsConnector())

	side, ok := conn.Side("skillGroup")
	require.True(t, ok)
	assert.Equal(t, "skillGroupId", side.Field)

	_, ok = conn.Side("office")
	assert.False(t, ok)

	access, err := cat.Lookup("access")
	require.NoError(t, err)
	assert.True(t, access.IsConnector())
	assert.False(t, access.Updatable)
	side, ok = access.Side("role")
	require.True(t, ok)
	assert.Equal(t, "role_id", side.Field)

	_, err = cat.Lookup("invoice")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestCatalogCheck(t *testing.T) {
	t.Parallel()

	newCustomer := func() Entity { return &Customer{} }

	assert.Error(t, Catalog{{Name: "customer"}}.Check())
	assert.Error(t, Catalog{
		{Name: "customer", New: newCustomer},
		{Name: "customer", New: newCustomer},
	}.Check())
	assert.Error(t, Catalog{
		{Name: "x", New: newCustomer, Sides: []Side{{Route: "a"}}},
	}.Check())
}
