// SPDX-License-Identifier: EPL-2.0

package readseek

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type onlyReader struct {
	r io.Reader
}

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestFrom_KeepsSeeker(t *testing.T) {
	t.Parallel()

	src := bytes.NewReader([]byte("abc"))
	rs, err := From(src)
	if err != nil {
		t.Fatalf("From() error = %v, want nil", err)
	}
	if rs != src {
		t.Error("From() wrapped a reader that already seeks")
	}
}

func TestFrom_BuffersPlainReader(t *testing.T) {
	t.Parallel()

	rs, err := From(onlyReader{bytes.NewBufferString("hello")})
	if err != nil {
		t.Fatalf("From() error = %v, want nil", err)
	}

	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v, want nil", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "ello" {
		t.Errorf("content after Seek(1) = %q, want %q", rest, "ello")
	}
}

func TestFrom_ReadError(t *testing.T) {
	t.Parallel()

	_, err := From(failingReader{})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("From() error = %v, want wrapped io.ErrUnexpectedEOF", err)
	}
}
