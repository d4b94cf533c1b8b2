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


// Command hwyprint exercises the hwy print primitive from the command line.
//
// Usage:
//
//	hwyprint demo -n 10                  # print every element
//	hwyprint demo -n 10 --when 3         # print only element 3
//	hwyprint demo -n 1000 --workers 8    # parallel schedule
//	hwyprint scenarios                   # run and verify the reference scenarios
//	hwyprint token f32:0.1 f64:42 str:%s ptr:127
//
// Flags can also be set through HWYPRINT_* environment variables or a YAML
// file passed with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
