package operations

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// gzipMagic is the two-byte header every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// CompressGzip compresses inputPath into inputPath + ".gz" and removes
// the original on success. A pre-existing compressed file of the same
// name is overwritten.
func CompressGzip(inputPath string) (string, error) {
	outputPath := inputPath + ".gz"

	inFile, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to open input file: %w", err)
	}
	defer inFile.Close()

	outFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	writer, err := gzip.NewWriterLevel(outFile, gzip.BestCompression)
	if err != nil {
		outFile.Close()
		os.Remove(outputPath)
		return "", fmt.Errorf("failed to create gzip writer: %w", err)
	}

	// A truncated .gz would match the sweeper pattern and pass for a
	// real artifact, so failures must not leave one behind.
	if _, err := io.Copy(writer, inFile); err != nil {
		writer.Close()
		outFile.Close()
		os.Remove(outputPath)
		return "", fmt.Errorf("failed to compress file: %w", err)
	}
	if err := writer.Close(); err != nil {
		outFile.Close()
		os.Remove(outputPath)
		return "", fmt.Errorf("failed to flush gzip stream: %w", err)
	}
	if err := outFile.Close(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	if err := os.Remove(inputPath); err != nil {
		return "", fmt.Errorf("failed to remove original file: %w", err)
	}

	return outputPath, nil
}

// DecompressGzip expands inputPath into a temporary file and returns its
// path. The caller owns the temporary file and removes it when done.
func DecompressGzip(inputPath string) (string, error) {
	inFile, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to open input file: %w", err)
	}
	defer inFile.Close()

	reader, err := gzip.NewReader(inFile)
	if err != nil {
		return "", fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer reader.Close()

	outFile, err := os.CreateTemp("", "mybak-restore-*.sql")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(outFile, reader); err != nil {
		outFile.Close()
		os.Remove(outFile.Name())
		return "", fmt.Errorf("failed to decompress file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		os.Remove(outFile.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return outFile.Name(), nil
}

// DetectGzip reports whether path starts with the gzip magic bytes.
// Detection is by content, not filename, so a misnamed artifact still
// restores correctly.
func DetectGzip(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	header := make([]byte, len(gzipMagic))
	if _, err := io.ReadFull(file, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, fmt.Errorf("failed to read file header: %w", err)
	}

	return bytes.Equal(header, gzipMagic), nil
}
