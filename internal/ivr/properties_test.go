package ivr

import (
	"context"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var keypad = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "*", "#"}

func keys(idx []int) []string {
	out := make([]string, len(idx))
	for i, k := range idx {
		out[i] = keypad[k]
	}
	return out
}

func keySequence() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(keypad)-1))
}

func TestEngineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("hold exists only in confirm and never leaks", prop.ForAll(
		func(seq []int) bool {
			env := newTestEnv()
			env.slots.numbered = true
			start, err := env.engine.StartCall(context.Background(), testPhone, testCatalog)
			if err != nil {
				return false
			}

			for _, d := range keys(seq) {
				if _, err := env.engine.HandleDigit(context.Background(), start.CallID, d); err != nil {
					return false
				}
				snap, _ := env.engine.Snapshot(start.CallID)

				inConfirm := snap.State == StateConfirm
				if (snap.HoldID != "") != inConfirm {
					return false
				}
				if inConfirm != (env.holds.liveCount() == 1) || env.holds.liveCount() > 1 {
					return false
				}
				if snap.SelectedIndex < 0 || snap.SelectedIndex > len(snap.CandidateSlots) {
					return false
				}
				if snap.State == StateSelectTime && snap.SelectedIndex != 0 {
					return false
				}
			}
			return true
		},
		keySequence(),
	))

	properties.Property("candidate slots change only on offering selection", prop.ForAll(
		func(seq []int) bool {
			env := newTestEnv()
			env.slots.numbered = true
			start, err := env.engine.StartCall(context.Background(), testPhone, testCatalog)
			if err != nil {
				return false
			}

			prev, _ := env.engine.Snapshot(start.CallID)
			for _, d := range keys(seq) {
				calls := env.slots.calls
				if _, err := env.engine.HandleDigit(context.Background(), start.CallID, d); err != nil {
					return false
				}
				cur, _ := env.engine.Snapshot(start.CallID)

				regenerated := env.slots.calls != calls
				if regenerated && prev.State != StateSelectService {
					return false
				}
				if !regenerated && prev.CandidateSlots != nil && !equalStrings(prev.CandidateSlots, cur.CandidateSlots) {
					return false
				}
				prev = cur
			}
			return true
		},
		keySequence(),
	))

	properties.Property("repeat key is idempotent", prop.ForAll(
		func(seq []int) bool {
			env := newTestEnv()
			start, err := env.engine.StartCall(context.Background(), testPhone, testCatalog)
			if err != nil {
				return false
			}
			for _, d := range keys(seq) {
				if _, err := env.engine.HandleDigit(context.Background(), start.CallID, d); err != nil {
					return false
				}
			}

			before, _ := env.engine.Snapshot(start.CallID)
			first, err := env.engine.HandleDigit(context.Background(), start.CallID, "9")
			if err != nil {
				return false
			}
			second, err := env.engine.HandleDigit(context.Background(), start.CallID, "9")
			if err != nil {
				return false
			}
			after, _ := env.engine.Snapshot(start.CallID)

			return first.Message == second.Message &&
				before.State == after.State &&
				before.HoldID == after.HoldID &&
				before.SelectedIndex == after.SelectedIndex &&
				equalStrings(before.CandidateSlots, after.CandidateSlots)
		},
		keySequence(),
	))

	properties.Property("done is terminal", prop.ForAll(
		func(seq []int) bool {
			env := newTestEnv()
			start, err := env.engine.StartCall(context.Background(), testPhone, testCatalog)
			if err != nil {
				return false
			}
			final, err := env.engine.HandleDigit(context.Background(), start.CallID, "2")
			if err != nil {
				return false
			}
			for _, d := range []string{"1", "1"} {
				if final, err = env.engine.HandleDigit(context.Background(), start.CallID, d); err != nil {
					return false
				}
			}
			if final.State != StateDone || final.BookingID == "" {
				return false
			}

			for _, d := range keys(seq) {
				r, err := env.engine.HandleDigit(context.Background(), start.CallID, d)
				if err != nil || r.State != StateDone || r.BookingID != final.BookingID {
					return false
				}
				if r.Message != env.engine.Prompts().CallEnded {
					return false
				}
			}
			return true
		},
		keySequence(),
	))

	properties.Property("every offering choice opens a three item time menu", prop.ForAll(
		func(i int) bool {
			env := newTestEnv()
			start, err := env.engine.StartCall(context.Background(), testPhone, testCatalog)
			if err != nil {
				return false
			}
			r, err := env.engine.HandleDigit(context.Background(), start.CallID, keypad[i+1])
			if err != nil {
				return false
			}
			return r.State == StateSelectTime &&
				len(r.Options) == 3 &&
				strings.Contains(r.Message, testCatalog[i].Label)
		},
		gen.IntRange(0, len(testCatalog)-1),
	))

	properties.TestingRun(t)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
