/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package strings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ustr "dirpx.dev/nsx/utils/strings"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		s     string
		count int
		want  string
	}{
		{"zero count", "hello", 0, "hello"},
		{"negative count", "hello", -3, "hello"},
		{"one from each end", "hello", 1, "ell"},
		{"two from each end", "hello", 2, "l"},
		{"count over half length", "hi", 3, ""},
		{"count exactly half", "abcd", 2, ""},
		{"empty string", "", 1, ""},
		{"multibyte runes", "ありがとう", 2, "が"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ustr.Trim(tt.s, tt.count))
		})
	}
}
