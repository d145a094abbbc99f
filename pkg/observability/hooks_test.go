package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	layoutStarts    int
	layoutCompletes int
	renderStarts    int
	renderCompletes int
}

func (r *recordingHooks) OnLayoutStart(context.Context, int, int)                { r.layoutStarts++ }
func (r *recordingHooks) OnLayoutComplete(context.Context, time.Duration, error) { r.layoutCompletes++ }
func (r *recordingHooks) OnRenderStart(context.Context, []string)                { r.renderStarts++ }
func (r *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	r.renderCompletes++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	// Must not panic.
	Pipeline().OnLayoutStart(context.Background(), 3, 3)
	Pipeline().OnLayoutComplete(context.Background(), time.Second, nil)
	Pipeline().OnRenderStart(context.Background(), []string{"svg"})
	Pipeline().OnRenderComplete(context.Background(), []string{"svg"}, time.Second, nil)
}

func TestSetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	SetPipelineHooks(rec)

	Pipeline().OnLayoutStart(context.Background(), 3, 3)
	Pipeline().OnRenderStart(context.Background(), []string{"svg"})

	if rec.layoutStarts != 1 || rec.renderStarts != 1 {
		t.Errorf("hooks = %+v, want one layout start and one render start", rec)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	SetPipelineHooks(rec)
	SetPipelineHooks(nil)

	Pipeline().OnLayoutStart(context.Background(), 1, 0)
	if rec.layoutStarts != 1 {
		t.Error("nil registration should keep the previous hooks")
	}
}
