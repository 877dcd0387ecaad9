package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kcdata/housing-prep/pkg/features"
	"github.com/kcdata/housing-prep/pkg/frame"
	"github.com/kcdata/housing-prep/pkg/model"
	"github.com/kcdata/housing-prep/pkg/pipeline"
)

// recordingTransform tracks invocation order for stage-ordering assertions
type recordingTransform struct {
	name  string
	calls *[]string
	fail  bool
}

func (r *recordingTransform) Name() string { return r.name }

func (r *recordingTransform) Apply(_ context.Context, f *frame.Frame) (*frame.Frame, error) {
	*r.calls = append(*r.calls, r.name)
	if r.fail {
		return nil, errors.New("stage failure")
	}
	return f, nil
}

func buildPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.Build(zaptest.NewLogger(t), features.DefaultConfig())
	require.NoError(t, err)
	return p
}

func rawFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f := frame.New()
	require.NoError(t, f.SetColumn(model.ColBedrooms, frame.Ints([]int64{3, 33})))
	require.NoError(t, f.SetColumn(model.ColPrice, frame.Floats([]float64{450000, 500000})))
	require.NoError(t, f.SetColumn(model.ColSqftLiving, frame.Floats([]float64{1500, 2000})))
	return f
}

func TestNewRequiresLogger(t *testing.T) {
	t.Parallel()

	_, err := pipeline.New(nil)
	assert.Error(t, err)
}

func TestRunNilFrame(t *testing.T) {
	t.Parallel()

	_, err := buildPipeline(t).Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunExecutesStepsInOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	p, err := pipeline.New(zaptest.NewLogger(t))
	require.NoError(t, err)
	p.Add(&recordingTransform{name: "first", calls: &calls}).
		Add(&recordingTransform{name: "second", calls: &calls})

	_, err = p.Run(context.Background(), frame.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestRunAbortsOnStepFailure(t *testing.T) {
	t.Parallel()

	var calls []string
	p, err := pipeline.New(zaptest.NewLogger(t))
	require.NoError(t, err)
	p.Add(&recordingTransform{name: "first", calls: &calls, fail: true}).
		Add(&recordingTransform{name: "second", calls: &calls})

	_, err = p.Run(context.Background(), frame.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Equal(t, []string{"first"}, calls, "later steps must not run")
}

func TestRunCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := buildPipeline(t).Run(ctx, rawFrame(t))
	assert.Error(t, err)
}

func TestRunCleansThenAugments(t *testing.T) {
	t.Parallel()

	out, err := buildPipeline(t).Run(context.Background(), rawFrame(t))
	require.NoError(t, err)

	// The outlier row is dropped before standardization sees it
	require.Equal(t, 1, out.NumRows())
	assert.Equal(t, []int{0}, out.Index())

	bedrooms, _ := out.Column(model.ColBedrooms)
	assert.Equal(t, frame.KindFloat, bedrooms.Kind(), "numeric columns come back standardized")
	v, ok := bedrooms.Float(0)
	require.True(t, ok)
	assert.Zero(t, v, "single surviving row standardizes to zero")
}

func TestRunDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	f := rawFrame(t)
	_, err := buildPipeline(t).Run(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, 2, f.NumRows())
	bedrooms, _ := f.Column(model.ColBedrooms)
	v, ok := bedrooms.Int(1)
	require.True(t, ok)
	assert.Equal(t, int64(33), v)
}

func TestRunIsReentrant(t *testing.T) {
	t.Parallel()

	p := buildPipeline(t)

	inputs := make([]*frame.Frame, 8)
	for i := range inputs {
		inputs[i] = rawFrame(t)
	}

	var wg sync.WaitGroup
	for _, f := range inputs {
		f := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := p.Run(context.Background(), f)
			if assert.NoError(t, err) {
				assert.Equal(t, 1, out.NumRows())
			}
		}()
	}
	wg.Wait()
}
