package tracking_test

import (
	"testing"
	"time"

	"packagetracker/internal/core/domain/model/tracking"
	"packagetracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageUpdate_EditStatus(t *testing.T) {
	t.Run("should change status text but not the event timestamp", func(t *testing.T) {
		eventTime := time.Now().Add(-time.Hour)
		update, err := tracking.RestorePackageUpdate(11, 42, "In transit", eventTime)
		require.NoError(t, err)

		err = update.EditStatus("Collected by carrier")

		require.NoError(t, err)
		assert.Equal(t, "Collected by carrier", update.Status())
		assert.Equal(t, eventTime, update.UpdateDate())
	})

	t.Run("should reject empty status", func(t *testing.T) {
		update, err := tracking.RestorePackageUpdate(11, 42, "In transit", time.Now())
		require.NoError(t, err)

		err = update.EditStatus("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "In transit", update.Status())
	})
}

func TestPackageUpdate_Validate(t *testing.T) {
	t.Run("nil update fails validation", func(t *testing.T) {
		var u *tracking.PackageUpdate

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, tracking.ErrPackageUpdateIsNotConstructed, err)
	})

	t.Run("zero-value update fails validation", func(t *testing.T) {
		u := &tracking.PackageUpdate{}

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, tracking.ErrPackageUpdateIsNotConstructed, err)
	})
}

func TestPackageUpdate_AssignID(t *testing.T) {
	t.Run("assigns once", func(t *testing.T) {
		p, err := tracking.NewPackage("Game Box", decimal.NewFromFloat(1.8), "", "")
		require.NoError(t, err)
		update, err := p.AddUpdate("Posted", false)
		require.NoError(t, err)
		require.Zero(t, update.ID())

		require.NoError(t, update.AssignID(11))
		assert.EqualValues(t, 11, update.ID())

		err = update.AssignID(12)
		require.Error(t, err)
		assert.EqualValues(t, 11, update.ID())
	})
}

func TestRestorePackageUpdate(t *testing.T) {
	t.Run("rejects empty status", func(t *testing.T) {
		_, err := tracking.RestorePackageUpdate(11, 42, "", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("carries all fields", func(t *testing.T) {
		eventTime := time.Now().Add(-time.Hour)
		u, err := tracking.RestorePackageUpdate(11, 42, "Posted", eventTime)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.EqualValues(t, 11, u.ID())
		assert.EqualValues(t, 42, u.PackageID())
		assert.Equal(t, "Posted", u.Status())
		assert.Equal(t, eventTime, u.UpdateDate())
	})
}
