package gamstats

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZlib
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZlib:  {0x78, 0x9c},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType attempts to detect the data type of a stream by checking
// against a set of known data types. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	n, err := io.ReadFull(r, buff)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return DataTypeInvalid, err
	}
	buff = buff[:n]

	// Match known signatures
Outer:
	for dt, sig := range byteCodeSigs {
		if len(buff) < len(sig) {
			continue
		}
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompressReadCloser sniffs the compression of rs, rewinds it, and
// returns a reader of the decompressed stream. Closing the returned reader
// does not close rs unless no decompression was needed.
func MaybeDecompressReadCloser(rs io.ReadSeekCloser) (io.ReadCloser, error) {
	dt, err := DetectDataType(rs)
	if err != nil {
		return nil, err
	}

	// Reset your original reader before any decompressor reads its header
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	switch dt {
	case DataTypeGzip:
		return gzip.NewReader(rs)
	case DataTypeZip:
		zr := zipstream.NewReader(rs)
		// Segregation archives hold a single table; read the first entry.
		if _, err := zr.Next(); err != nil {
			return nil, fmt.Errorf("zip archive: %w", err)
		}
		return &readCloserFaker{zr}, nil
	case DataTypeBZip2:
		return &readCloserFaker{bzip2.NewReader(rs)}, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(rs, 0)
		if err != nil {
			return nil, err
		}
		return &readCloserFaker{reader}, nil
	case DataTypeZlib:
		return zlib.NewReader(rs)
	}

	// No data type detected. For now, we assume this is uncompressed.
	return rs, nil
}

// readCloserFaker "upgrades" readers that don't need to be closed
type readCloserFaker struct {
	io.Reader
}

func (c *readCloserFaker) Close() error {
	return nil
}
