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

package strings

// Trim removes count characters from each end of s.
//
// A count <= 0 leaves s unchanged. A count greater than half the
// character length of s trims everything and returns "". Counting is
// rune-based, so multi-byte characters are trimmed whole.
func Trim(s string, count int) string {
	if count <= 0 {
		return s
	}

	runes := []rune(s)
	if count > len(runes)/2 {
		return ""
	}

	return string(runes[count : len(runes)-count])
}
