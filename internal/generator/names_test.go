package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameTable(t *testing.T) {
	t.Run("memoizes within one run", func(t *testing.T) {
		nt := newNameTable(nil)
		first := nt.Get("score", NameVariable)
		second := nt.Get("score", NameVariable)
		require.Equal(t, first, second)
	})

	t.Run("kinds are separate namespaces", func(t *testing.T) {
		nt := newNameTable(nil)
		v := nt.Get("run", NameVariable)
		p := nt.Get("run", NameProcedure)
		require.NotEqual(t, v, p)
	})

	t.Run("avoids reserved words", func(t *testing.T) {
		nt := newNameTable([]string{"while", "int"})
		require.Equal(t, "while2", nt.Get("while", NameVariable))
		require.Equal(t, "int2", nt.Get("int", NameVariable))
	})

	t.Run("distinct logical names never collide", func(t *testing.T) {
		nt := newNameTable(nil)
		a := nt.Get("my value", NameVariable)
		b := nt.Get("my_value", NameVariable)
		require.Equal(t, "my_value", a)
		require.NotEqual(t, a, b)
	})

	t.Run("Distinct is fresh every call", func(t *testing.T) {
		nt := newNameTable(nil)
		a := nt.Distinct("count", NameVariable)
		b := nt.Distinct("count", NameVariable)
		require.Equal(t, "count", a)
		require.Equal(t, "count2", b)
	})

	t.Run("sanitizes to identifier form", func(t *testing.T) {
		nt := newNameTable(nil)
		require.Equal(t, "lap_time", nt.Get("lap time!", NameVariable))
		require.Equal(t, "v_2fast", nt.Get("2fast", NameVariable))
		require.Equal(t, "unnamed", nt.Get("???", NameVariable))
	})

	t.Run("developer names carry a prefix", func(t *testing.T) {
		nt := newNameTable(nil)
		require.Equal(t, "blockc_listRemoveLast", nt.Get("listRemoveLast", NameDeveloper))
	})
}
