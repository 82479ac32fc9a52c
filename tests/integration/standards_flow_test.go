// Integration tests for the standard-units lifecycle through the public
// facade: unset until configured, configuration from a list of unit
// expressions, standardization across forms.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/unitwand/pkg/standards"
	"github.com/mesh-intelligence/unitwand/pkg/types"
	"github.com/mesh-intelligence/unitwand/pkg/unitwand"
)

func TestStandardizeFlow(t *testing.T) {
	standards.Default().Reset()
	t.Cleanup(standards.Default().Reset)

	q, err := unitwand.Parse("10 angstrom", "", "")
	require.NoError(t, err)

	// Before configuration every standardization attempt fails.
	_, err = unitwand.Standardize(q)
	require.ErrorIs(t, err, types.ErrNoStandards)

	require.NoError(t, unitwand.SetStandardUnits([]string{"nm", "ps", "kJ"}))

	std, err := unitwand.Standardize(q)
	require.NoError(t, err)

	u, err := unitwand.GetUnit(std)
	require.NoError(t, err)
	assert.Equal(t, "nm", u)

	v, err := unitwand.GetValue(std)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v.(float64), 1e-12)

	// Standardizing a resource-form payload preserves the form.
	rq, err := unitwand.Parse("2000 J", "", "k8s.resource")
	require.NoError(t, err)
	stdr, err := unitwand.Standardize(rq)
	require.NoError(t, err)
	form, err := unitwand.GetForm(stdr)
	require.NoError(t, err)
	assert.Equal(t, types.FormResource, form)

	// No standard applies to electrical current.
	cur, err := unitwand.Parse("3 A", "", "")
	require.NoError(t, err)
	_, err = unitwand.Standardize(cur)
	require.ErrorIs(t, err, types.ErrNoStandards)

	// Reconfiguration replaces the whole set.
	require.NoError(t, unitwand.SetStandardUnits([]string{"angstrom"}))
	sym, ok, err := unitwand.GetStandardUnits(q)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "angstrom", sym)
}

func TestStandardsConfigurationErrors(t *testing.T) {
	standards.Default().Reset()
	t.Cleanup(standards.Default().Reset)

	assert.Error(t, unitwand.SetStandardUnits([]string{"florp"}))
	assert.Error(t, unitwand.SetStandardUnits([]string{"nm", "angstrom"}))
	assert.False(t, standards.Default().IsConfigured())
}
