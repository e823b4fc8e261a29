package session_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/JasminDreasond/Tiny-Dices/internal/dice"
	mockdice "github.com/JasminDreasond/Tiny-Dices/internal/dice/mock"
	dicerr "github.com/JasminDreasond/Tiny-Dices/internal/errors"
	"github.com/JasminDreasond/Tiny-Dices/internal/session"
	mocksurface "github.com/JasminDreasond/Tiny-Dices/internal/surface/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequentialGenerator hands out predictable instance IDs
type sequentialGenerator struct {
	next int
}

func (g *sequentialGenerator) New() string {
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

func newTestSession(surf *mocksurface.ManualMockSurface) *session.Session {
	cfg := &session.Config{
		Roller:        dice.NewRandomRoller(&dice.Config{Seed: 17}),
		UUIDGenerator: &sequentialGenerator{},
		SpinDuration:  20 * time.Millisecond,
	}
	if surf != nil {
		cfg.Surface = surf
	}
	return session.New(cfg)
}

func TestNew_RequiresRoller(t *testing.T) {
	assert.Panics(t, func() {
		session.New(&session.Config{})
	})
	assert.Panics(t, func() {
		session.New(nil)
	})
}

func TestSession_Roll(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	outcomes, err := sess.Roll("6,8,20", false, false)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	for i, max := range []int{6, 8, 20} {
		outcome := outcomes[i]
		require.Len(t, outcome.Sequence, 6)
		assert.Equal(t, outcome.Result, outcome.Sequence[0])
		for _, v := range outcome.Sequence {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, max)
		}
	}

	assert.Len(t, surf.Attached(), 3)
	assert.Equal(t, 3, sess.CubeCount())
	assert.Len(t, sess.Outcomes(), 3)
}

func TestSession_Roll_DiscardsPreviousDice(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6,6,6", false, false)
	require.NoError(t, err)
	require.Equal(t, 3, sess.CubeCount())

	outcomes, err := sess.Roll("20", false, false)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	// The old dice are gone and the stacking counter restarted
	assert.Equal(t, 1, sess.CubeCount())
	assert.Len(t, sess.Outcomes(), 1)
	assert.Len(t, surf.Attached(), 1)
	assert.GreaterOrEqual(t, surf.RemoveAllCalls(), 1)
}

func TestSession_Roll_SentinelBoundIsDegenerate(t *testing.T) {
	sess := newTestSession(nil)

	outcomes, err := sess.Roll("6,x,20", false, false)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	// The malformed middle entry degrades to the all-zero die
	assert.Equal(t, 0, outcomes[1].Result)
	for _, v := range outcomes[1].Sequence {
		assert.Equal(t, 0, v)
	}
}

func TestSession_Roll_WithoutSurface(t *testing.T) {
	sess := newTestSession(nil)

	outcomes, err := sess.Roll([]int{4, 8}, false, false)
	require.NoError(t, err)
	assert.Len(t, outcomes, 2)

	// No surface means no stacking
	assert.Equal(t, 0, sess.CubeCount())
}

func TestSession_RollSingle_IsAdditive(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6", false, false)
	require.NoError(t, err)

	outcome, err := sess.RollSingle(20, false, false)
	require.NoError(t, err)
	require.Len(t, outcome.Sequence, 6)

	assert.Equal(t, 2, sess.CubeCount())
	assert.Len(t, sess.Outcomes(), 2)
	assert.Len(t, surf.Attached(), 2)
}

func TestSession_RollMany_IsAdditive(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6", false, false)
	require.NoError(t, err)

	outcomes, err := sess.RollMany([]int{8, 10}, true, false)
	require.NoError(t, err)
	assert.Len(t, outcomes, 2)
	assert.Equal(t, 3, sess.CubeCount())
}

func TestSession_Roll_DeterministicWithMockRoller(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	// Front face, then five distinct remaining faces
	roller.SetRolls([]int{4, 1, 2, 3, 5, 6})

	sess := session.New(&session.Config{Roller: roller})

	outcomes, err := sess.Roll("6", false, false)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, 4, outcomes[0].Result)
	assert.Equal(t, []int{4, 1, 2, 3, 5, 6}, outcomes[0].Sequence)
}

func TestSession_Roll_StackOrderIsMonotonic(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6,6", false, false)
	require.NoError(t, err)

	orders := make(map[int]bool)
	for _, face := range surf.Attached() {
		orders[face.StackOrder] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, orders)
}

func TestSession_StopSpinFiresAfterDelay(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6", false, false)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(surf.Stopped()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSession_RollInfinitySkipsStopSpin(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6", false, true)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, surf.Stopped())
}

func TestSession_ClearCancelsPendingTimers(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6", false, false)
	require.NoError(t, err)
	require.NoError(t, sess.ClearDiceArea())

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, surf.Stopped())
	assert.Equal(t, 0, sess.CubeCount())
	assert.Empty(t, sess.Outcomes())
}

func TestSession_AttachErrorPropagates(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	surf.AttachErr = errors.New("surface gone")
	sess := newTestSession(surf)

	_, err := sess.Roll("6", false, false)
	assert.Error(t, err)
}

func TestSession_Destroy(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6,8", false, false)
	require.NoError(t, err)

	sess.Destroy()
	assert.True(t, sess.IsDestroyed())
	assert.Empty(t, sess.Outcomes())
	assert.Equal(t, 0, sess.CubeCount())

	// Skins and defaults are gone too
	resolved := sess.ResolvedSkin()
	assert.Empty(t, resolved.Background)
	assert.Empty(t, resolved.Text)
}

func TestSession_Destroy_IsIdempotent(t *testing.T) {
	sess := newTestSession(nil)

	sess.Destroy()
	assert.NotPanics(t, func() { sess.Destroy() })
	assert.True(t, sess.IsDestroyed())
}

func TestSession_MutatingCallsFailAfterDestroy(t *testing.T) {
	sess := newTestSession(mocksurface.NewManualMockSurface())
	sess.Destroy()

	_, err := sess.Roll("6", false, false)
	assert.True(t, dicerr.IsDestroyed(err))

	_, err = sess.RollSingle(6, false, false)
	assert.True(t, dicerr.IsDestroyed(err))

	_, err = sess.RollMany([]int{6}, false, false)
	assert.True(t, dicerr.IsDestroyed(err))

	_, err = sess.RollNumber(6, false)
	assert.True(t, dicerr.IsDestroyed(err))

	assert.True(t, dicerr.IsDestroyed(sess.ClearDiceArea()))
	assert.True(t, dicerr.IsDestroyed(sess.SetBgSkin("red")))
	assert.True(t, dicerr.IsDestroyed(sess.SetTextSkin("red")))
	assert.True(t, dicerr.IsDestroyed(sess.SetBorderSkin("2px solid red")))
	assert.True(t, dicerr.IsDestroyed(sess.SetBgImgSkin("data:image/png;base64,QUJD", false)))
	assert.True(t, dicerr.IsDestroyed(sess.SetSelectionBgSkin("red")))
	assert.True(t, dicerr.IsDestroyed(sess.SetSelectionTextSkin("red")))
}

func TestSession_GettersReturnZeroAfterDestroy(t *testing.T) {
	sess := newTestSession(nil)
	require.NoError(t, sess.SetBgSkin("#101010"))

	sess.Destroy()

	got, ok := sess.BgSkin()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestSession_StaleTimerAfterDestroyIsNoOp(t *testing.T) {
	surf := mocksurface.NewManualMockSurface()
	sess := newTestSession(surf)

	_, err := sess.Roll("6", false, false)
	require.NoError(t, err)
	sess.Destroy()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, surf.Stopped())
}
