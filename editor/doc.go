//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package editor implements the core state of zeptex: the line buffer
// with its 1-based insert, append, and delete operations, the scroll
// offset over it, and loading and saving the buffer as plain text.
// Everything here runs without a terminal, which is what makes the
// editor testable; the screen package owns the terminal itself.
package editor
