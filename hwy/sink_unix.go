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


//go:build unix

package hwy

import (
	"errors"

	"golang.org/x/sys/unix"
)

// writeStderr issues write(2) on fd 2 directly, bypassing os.File so a
// message is one syscall in the common case. Short writes and EINTR are
// retried; other errors drop the rest of the message.
func writeStderr(msg []byte) {
	for len(msg) > 0 {
		n, err := unix.Write(unix.Stderr, msg)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return
		}
		msg = msg[n:]
	}
}
