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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-hwyprint/hwy"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t,
		"0 the answer is 42.000000 unsigned 145\n"+
			"1 the answer is 42.000000 unsigned 145\n"+
			"4 the answer is 42.000000 unsigned 145\n", out)
}

func TestDemoWhen(t *testing.T) {
	out, err := execute(t, "demo", "-n", "10", "--when", "3")
	require.NoError(t, err)
	assert.Equal(t, "9 the answer is 42.000000 unsigned 145\n", out)
}

func TestDemoParallel(t *testing.T) {
	out, err := execute(t, "demo", "-n", "100", "--workers", "4")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 100)
}

func TestScenarios(t *testing.T) {
	out, err := execute(t, "scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "== print (10 messages)\n")
	assert.Contains(t, out, "== print_when (1 messages)\n9 g 42.000000 %s 0x7f\n")
	assert.Contains(t, out, "== long_message (1 messages)\n")
	assert.Contains(t, out, "== float_specials (10 messages)\n0.000000\n-0.000000\ninf\n-inf\nnan\nnan\n")
}

func TestScenariosParallelAndOnly(t *testing.T) {
	out, err := execute(t, "scenarios", "--workers", "3", "--only", "print,print_when")
	require.NoError(t, err)
	assert.Contains(t, out, "== print (10 messages)")
	assert.NotContains(t, out, "long_message")

	_, err = execute(t, "scenarios", "--only", "bogus")
	assert.ErrorContains(t, err, "unknown scenarios bogus")
}

func TestToken(t *testing.T) {
	out, err := execute(t, "token", "i32:-5", "u8:255", "f32:-0", "f64:42", "str:%s", "ptr:127", "f32:nan")
	require.NoError(t, err)
	assert.Equal(t, "-5 255 -0.000000 4.200000e+01 %s 0x7f nan\n", out)
}

func TestParseValueErrors(t *testing.T) {
	for _, arg := range []string{"42", "i8:300", "u16:-1", "f64:abc", "bool:true", "ptr:zz"} {
		_, err := parseValue(arg)
		assert.Error(t, err, arg)
	}

	v, err := parseValue("ptr:0x10")
	require.NoError(t, err)
	assert.Equal(t, hwy.Handle(16), v)
}

func TestSinkFromEnvironment(t *testing.T) {
	t.Setenv("HWYPRINT_SINK", "discard")
	out, err := execute(t, "demo", "-n", "5")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSinkFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwyprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sink: discard\n"), 0o600))

	out, err := execute(t, "--config", path, "demo", "-n", "5")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestInvalidSettings(t *testing.T) {
	_, err := execute(t, "--sink", "printer", "demo")
	assert.ErrorContains(t, err, `unknown sink "printer"`)

	_, err = execute(t, "--log-level", "loud", "demo")
	assert.ErrorContains(t, err, "invalid log level")
}
