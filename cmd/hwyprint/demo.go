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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-hwyprint/hwy"
	"github.com/ajroetker/go-hwyprint/hwy/contrib/pipeline"
	"github.com/ajroetker/go-hwyprint/hwy/contrib/workerpool"
)

func newDemoCommand(a *app) *cobra.Command {
	var (
		n    int
		when int
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Realize f(x) = x*x over n elements, printing each element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sink, err := a.sink()
			if err != nil {
				return err
			}
			return runDemo(a, sink, n, when)
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 10, "number of elements")
	cmd.Flags().IntVar(&when, "when", -1, "only print element x == when; negative prints every element")
	return cmd
}

// runDemo realizes the squares pipeline and checks its output is untouched
// by the instrumentation.
func runDemo(a *app, sink hwy.Sink, n, when int) error {
	f := pipeline.New("squares", func(r *hwy.Run, x int) int64 {
		v := int64(x)
		return hwy.PrintWhen(r, when < 0 || x == when,
			v*v, hwy.Str("the answer is"), hwy.Float32(42), hwy.Str("unsigned"), hwy.Uint32(145))
	})
	f.SetCustomPrint(sink).SetLogger(a.logger)
	if w := a.workers(); w > 0 {
		pool := workerpool.New(w)
		defer pool.Close()
		f.Parallel(pool)
	}

	out, err := f.Realize(n)
	if err != nil {
		return fmt.Errorf("realizing %s: %w", f.Name(), err)
	}
	for x := range n {
		if got := out.At(x, 0); got != int64(x)*int64(x) {
			return fmt.Errorf("element %d: got %d, want %d", x, got, int64(x)*int64(x))
		}
	}
	a.logger.Info("demo finished", zap.Int("elements", n))
	return nil
}
