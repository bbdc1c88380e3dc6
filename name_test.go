package typereg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveName_StructValue(t *testing.T) {
	name, err := DeriveName(Sedan{})
	require.NoError(t, err)
	require.Equal(t, "Sedan", name)
}

func TestDeriveName_PointerIndirection(t *testing.T) {
	name, err := DeriveName(&Sedan{})
	require.NoError(t, err)
	require.Equal(t, "Sedan", name)

	// Double indirection still reaches the element type.
	s := &Sedan{}
	name, err = DeriveName(&s)
	require.NoError(t, err)
	require.Equal(t, "Sedan", name)
}

func TestDeriveName_NamedNonStruct(t *testing.T) {
	type LicensePlate string

	name, err := DeriveName(LicensePlate("abc-123"))
	require.NoError(t, err)
	require.Equal(t, "LicensePlate", name)
}

func TestDeriveName_Nil(t *testing.T) {
	_, err := DeriveName(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeriveName_UnnamedTypes(t *testing.T) {
	cases := map[string]any{
		"func":             func() {},
		"anonymous struct": struct{ X int }{},
		"slice":            []Sedan{},
		"map":              map[string]Sedan{},
	}
	for label, item := range cases {
		t.Run(label, func(t *testing.T) {
			_, err := DeriveName(item)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestIsNilItem(t *testing.T) {
	var nilVehicle Vehicle
	var nilFn func() Vehicle
	var nilPtr *Sedan

	require.True(t, isNilItem(nil))
	require.True(t, isNilItem(nilVehicle))
	require.True(t, isNilItem(nilFn))
	require.True(t, isNilItem(nilPtr))

	require.False(t, isNilItem(Sedan{}))
	require.False(t, isNilItem(&Sedan{}))
	require.False(t, isNilItem(0))
	require.False(t, isNilItem(""))
}
