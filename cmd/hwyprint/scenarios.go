// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-hwyprint/hwy"
	"github.com/ajroetker/go-hwyprint/hwy/contrib/pipeline"
	"github.com/ajroetker/go-hwyprint/hwy/contrib/printsink"
	"github.com/ajroetker/go-hwyprint/hwy/contrib/workerpool"
)

// scenario realizes one pipeline into sink and verifies its primary output
// and, where the schedule makes it deterministic, its messages.
type scenario struct {
	name string
	run  func(sink hwy.Sink, pool *workerpool.Pool) error
	// want lists the expected messages in element order; nil skips the
	// comparison.
	want []string
}

func referenceScenarios() []scenario {
	return []scenario{
		{
			name: "print",
			run: func(sink hwy.Sink, pool *workerpool.Pool) error {
				f := pipeline.New("f", func(r *hwy.Run, x int) int32 {
					v := int32(x)
					return hwy.Print(r, v*v, hwy.Str("the answer is"), hwy.Float32(42), hwy.Str("unsigned"), hwy.Uint32(145))
				})
				return checkOutput(f, sink, pool, 10, func(x int) int32 { return int32(x * x) })
			},
			want: lo.Times(10, func(x int) string {
				return fmt.Sprintf("%d the answer is 42.000000 unsigned 145\n", x*x)
			}),
		},
		{
			name: "print_when",
			run: func(sink hwy.Sink, pool *workerpool.Pool) error {
				f := pipeline.New("f", func(r *hwy.Run, x int) int32 {
					v := int32(x)
					return hwy.PrintWhen(r, x == 3, v*v, hwy.Str("g"), hwy.Float32(42), hwy.Str("%s"), hwy.Handle(127))
				})
				return checkOutput(f, sink, pool, 10, func(x int) int32 { return int32(x * x) })
			},
			want: []string{"9 g 42.000000 %s 0x7f\n"},
		},
		{
			name: "long_message",
			run: func(sink hwy.Sink, pool *workerpool.Pool) error {
				var lens []int
				f := pipeline.New("f", func(r *hwy.Run, _ int) uint64 {
					args := longArguments()
					return hwy.Print(r, uint64(100), args...)
				})
				measure := func(ctx any, msg []byte) {
					lens = append(lens, len(msg))
					sink(ctx, msg)
				}
				if err := checkOutput(f, measure, nil, 1, func(int) uint64 { return 100 }); err != nil {
					return err
				}
				if !slices.Equal(lens, []int{hwy.MaxMessageLen}) {
					return fmt.Errorf("message lengths %v, want [%d]", lens, hwy.MaxMessageLen)
				}
				return nil
			},
		},
		{
			name: "float_specials",
			run: func(sink hwy.Sink, pool *workerpool.Pool) error {
				specials := floatSpecials()
				f := pipeline.New("f", func(r *hwy.Run, x int) float32 {
					return hwy.Print(r, specials[x])
				})
				out, err := f.SetCustomPrint(sink).Realize(len(specials))
				if err != nil {
					return err
				}
				for x, v := range specials {
					if math.Float32bits(out.At(x, 0)) != math.Float32bits(v) {
						return fmt.Errorf("element %d changed by print", x)
					}
				}
				return nil
			},
			want: []string{
				"0.000000\n", "-0.000000\n", "inf\n", "-inf\n", "nan\n", "nan\n",
				"340282346638528859811704183484516925440.000000\n", "0.000000\n",
				"-340282346638528859811704183484516925440.000000\n", "-0.000000\n",
			},
		},
	}
}

// longArguments builds the 999 trailing arguments of the long-message
// scenario: repeated squarings of the element index as uint64 and float64.
func longArguments() []hwy.Value {
	args := make([]hwy.Value, 0, 999)
	for i := range 500 {
		e := uint64(i)
		for range 4 {
			e *= e
		}
		if i > 0 {
			args = append(args, hwy.Uint64(e+100))
		}
		d := float64(e)
		d *= d
		d *= d
		args = append(args, hwy.Float64(d))
	}
	return args
}

func floatSpecials() []float32 {
	return []float32{
		0,
		float32(math.Copysign(0, -1)),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		float32(math.NaN()),
		-float32(math.NaN()),
		math.MaxFloat32,
		0x1p-126,
		-math.MaxFloat32,
		-0x1p-126,
	}
}

// checkOutput realizes f over n elements and compares every element with
// want.
func checkOutput[T hwy.Lanes](f *pipeline.Func[T], sink hwy.Sink, pool *workerpool.Pool, n int, want func(x int) T) error {
	f.SetCustomPrint(sink)
	if pool != nil {
		f.Parallel(pool)
	}
	out, err := f.Realize(n)
	if err != nil {
		return err
	}
	for x := range n {
		if got := out.At(x, 0); got != want(x) {
			return fmt.Errorf("element %d: got %v, want %v", x, got, want(x))
		}
	}
	return nil
}

func newScenariosCommand(a *app) *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Run the reference print scenarios concurrently and replay their messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := referenceScenarios()
			selected := all
			if len(only) > 0 {
				names := lo.Map(all, func(s scenario, _ int) string { return s.name })
				if unknown := lo.Without(only, names...); len(unknown) > 0 {
					return fmt.Errorf("unknown scenarios %s (have %s)", strings.Join(unknown, ", "), strings.Join(names, ", "))
				}
				selected = lo.Filter(all, func(s scenario, _ int) bool { return lo.Contains(only, s.name) })
			}
			return runScenarios(a, cmd.OutOrStdout(), selected)
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "run only the named scenarios")
	return cmd
}

// runScenarios runs every scenario on its own goroutine, each capturing
// into its own Collector, then replays the captures in scenario order.
func runScenarios(a *app, w io.Writer, scenarios []scenario) error {
	var pool *workerpool.Pool
	if n := a.workers(); n > 0 {
		pool = workerpool.New(n)
		defer pool.Close()
	}

	collectors := make([]*printsink.Collector, len(scenarios))
	var g errgroup.Group
	for i, s := range scenarios {
		collectors[i] = printsink.NewCollector()
		g.Go(func() error {
			if err := s.run(collectors[i].Sink(), pool); err != nil {
				return fmt.Errorf("scenario %s: %w", s.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, s := range scenarios {
		got := collectors[i].Messages()
		if s.want != nil {
			if pool != nil {
				slices.Sort(got)
				want := slices.Sorted(slices.Values(s.want))
				if !slices.Equal(got, want) {
					return fmt.Errorf("scenario %s: messages differ from the reference", s.name)
				}
			} else if !slices.Equal(got, s.want) {
				return fmt.Errorf("scenario %s: messages differ from the reference", s.name)
			}
		}
		fmt.Fprintf(w, "== %s (%d messages)\n", s.name, collectors[i].Len())
		if err := collectors[i].Replay(w); err != nil {
			return err
		}
		if len(got) > 0 && hwy.Truncated([]byte(got[len(got)-1])) {
			fmt.Fprintln(w)
		}
	}
	return nil
}
