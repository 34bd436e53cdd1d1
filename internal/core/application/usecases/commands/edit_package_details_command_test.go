package commands_test

import (
	"testing"

	"packagetracker/internal/core/application/usecases/commands"
	"packagetracker/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditPackageDetailsCommand_ValidInput(t *testing.T) {
	code := kernel.NewTrackingCode()
	weight := decimal.NewFromFloat(1.2)
	cmd, err := commands.NewEditPackageDetailsCommand(code, "Vinyl", weight, "Bo", "bo@example.com")
	require.NoError(t, err)
	assert.True(t, code.IsEqual(cmd.Code()))
	assert.Equal(t, "Vinyl", cmd.Title())
	assert.True(t, weight.Equal(cmd.Weight()))
	assert.Equal(t, "Bo", cmd.SenderName())
	assert.Equal(t, "bo@example.com", cmd.SenderEmail())
}

func TestNewEditPackageDetailsCommand_InvalidCode(t *testing.T) {
	_, err := commands.NewEditPackageDetailsCommand(
		kernel.TrackingCode{}, "Vinyl", decimal.NewFromInt(1), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingCodeIsNotConstructed)
}

func TestNewEditPackageDetailsCommand_EmptyTitle(t *testing.T) {
	_, err := commands.NewEditPackageDetailsCommand(
		kernel.NewTrackingCode(), "", decimal.NewFromInt(1), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTitleIsRequired)
}

func TestNewEditPackageDetailsCommand_InvalidWeight(t *testing.T) {
	_, err := commands.NewEditPackageDetailsCommand(
		kernel.NewTrackingCode(), "Vinyl", decimal.Zero, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}
