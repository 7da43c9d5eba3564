package bank_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/railtopo/route18xx/bank"
)

func TestBank_TakeTile_DepletesAndFails(t *testing.T) {
	b := bank.New(map[string]int{"8": 1}, nil)
	require.NoError(t, b.TakeTile("8"))
	require.Equal(t, 0, b.TileCount("8"))
	require.Error(t, b.TakeTile("8"))
}

func TestBank_TakeTile_DebugTileExempt(t *testing.T) {
	b := bank.New(map[string]int{}, nil)
	require.NoError(t, b.TakeTile("DBG1"))
	require.NoError(t, b.TakeTile("DBG1"))
}

func TestBank_TakeTrain_DepletesAndFails(t *testing.T) {
	b := bank.New(nil, map[string]int{"4": 1})
	require.NoError(t, b.TakeTrain("4"))
	require.Error(t, b.TakeTrain("4"))
}

func TestBank_RustTrains_ZeroesCount(t *testing.T) {
	b := bank.New(nil, map[string]int{"2": 3})
	b.RustTrains("2")
	require.Equal(t, 0, b.TrainCount("2"))
}
