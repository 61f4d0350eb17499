package stats_test

//spellchecker:words bytes errors strings testing github ieograph internal stats
import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/FAU-CDI/ieograph/internal/stats"
)

func ExampleStageStats_Progress() {
	fmt.Printf("%q\n", stats.StageStats{Stage: stats.StageMap}.Progress())
	fmt.Println(stats.StageStats{Stage: stats.StageMap, Current: 3, Total: 10}.Progress())
	fmt.Println(stats.StageStats{Stage: stats.StageMap, Current: 10, Total: 10}.Progress())

	// Output: ""
	// map: 3/10
	// map: 10
}

func TestStats_DoStage(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	st := stats.NewStats(&buffer)

	if err := st.DoStage(stats.StageRead, func() error {
		st.SetCT(1, 2)
		return nil
	}); err != nil {
		t.Fatalf("DoStage returned %v", err)
	}

	errBroken := errors.New("broken")
	if err := st.DoStage(stats.StageMap, func() error { return errBroken }); !errors.Is(err, errBroken) {
		t.Fatalf("DoStage returned %v, want %v", err, errBroken)
	}

	all := st.All()
	if len(all) != 2 || all[0].Stage != stats.StageRead || all[1].Stage != stats.StageMap {
		t.Fatalf("All() = %v", all)
	}
	if all[0].Current != 1 || all[0].Total != 2 {
		t.Errorf("All()[0] = %v, want current 1 and total 2", all[0])
	}
	if all[0].End.Time.Before(all[0].Start.Time) {
		t.Errorf("All()[0] ends before it starts")
	}

	output := buffer.String()
	for _, want := range []string{"stage=read", "stage=map", "FAILED stage", "err=broken"} {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestStats_All(t *testing.T) {
	t.Parallel()

	st := stats.NewStats(nil)
	st.Start(stats.StageResolve)

	all := st.All()
	if len(all) != 1 || all[0].Stage != stats.StageResolve {
		t.Fatalf("All() = %v, want only the running stage", all)
	}

	ended := st.End()
	if ended.Stage != stats.StageResolve {
		t.Errorf("End() = %v", ended)
	}
	if got := st.End(); got.Stage != stats.StageInitial {
		t.Errorf("End() without a running stage = %v", got)
	}

	// modifying the result does not change the stats
	all = st.All()
	all[0].Stage = stats.StageMap
	if st.All()[0].Stage != stats.StageResolve {
		t.Errorf("All() shares its result with the stats")
	}
}

func TestStats_Nil(t *testing.T) {
	t.Parallel()

	var st *stats.Stats

	called := false
	if err := st.DoStage(stats.StageSerialize, func() error {
		called = true
		return nil
	}); err != nil || !called {
		t.Errorf("DoStage on nil stats: called = %v, err = %v", called, err)
	}

	st.SetCT(1, 1)
	st.Log("discarded")
	if all := st.All(); len(all) != 0 {
		t.Errorf("All() = %v, want nothing", all)
	}
	if st.Rewritable() != nil {
		t.Errorf("Rewritable() is not nil")
	}
}
