package ucf

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// readArchive enumerates {name, content} pairs from src in archive order,
// enforcing limits, and hands each to fn. Deflate entries are inflated with
// the klauspost decompressor.
func readArchive(src io.ReaderAt, size int64, limits Limits, fn func(name string, data []byte) error) error {
	zr, err := zip.NewReader(src, size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
	if len(zr.File) > limits.MaxEntries {
		return fmt.Errorf("%w: archive has %d entries", ErrLimitExceeded, len(zr.File))
	}
	var total uint64
	for _, f := range zr.File {
		if f.UncompressedSize64 > limits.MaxEntrySize {
			return fmt.Errorf("%w: entry %q declares %d bytes", ErrLimitExceeded, f.Name, f.UncompressedSize64)
		}
		total += f.UncompressedSize64
		if total > limits.MaxTotalSize {
			return fmt.Errorf("%w: archive expands beyond %d bytes", ErrLimitExceeded, limits.MaxTotalSize)
		}
		data, err := readEntry(f)
		if err != nil {
			return err
		}
		if err := fn(f.Name, data); err != nil {
			return err
		}
	}
	return nil
}

// readEntry reads one entry in full, rejecting entries that expand beyond
// their declared uncompressed size.
func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	declared := int64(f.UncompressedSize64)
	b, err := io.ReadAll(io.LimitReader(rc, declared+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > declared {
		return nil, fmt.Errorf("%w: entry %q expands beyond declared size", ErrLimitExceeded, f.Name)
	}
	return b, nil
}

// archiveWriter writes entries to a destination in call order, with a
// per-entry choice of stored or deflated.
type archiveWriter struct {
	zw *zip.Writer
}

func newArchiveWriter(w io.Writer, level int) *archiveWriter {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	return &archiveWriter{zw: zw}
}

// writeStored writes an uncompressed entry. The header carries no
// modification time and no extra field, so for the first entry the name
// begins at byte offset 30 and the content at offset 30+len(name). UCF
// readers sniff the mimetype through that fixed prefix.
func (aw *archiveWriter) writeStored(name string, data []byte) error {
	return aw.write(&zip.FileHeader{Name: name, Method: zip.Store}, data)
}

// writeDeflated writes a compressed entry.
func (aw *archiveWriter) writeDeflated(name string, data []byte) error {
	return aw.write(&zip.FileHeader{Name: name, Method: zip.Deflate}, data)
}

func (aw *archiveWriter) write(h *zip.FileHeader, data []byte) error {
	w, err := aw.zw.CreateHeader(h)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (aw *archiveWriter) Close() error {
	return aw.zw.Close()
}
