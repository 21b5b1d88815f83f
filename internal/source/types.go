package source

type (
	// FileID uniquely identifies a loaded log file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags records which normalizations were applied on load.
	FileFlags uint8
)

// NoFileID marks spans that do not point into any file (CLI options, config keys).
const NoFileID FileID = ^FileID(0)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
	// FileNormalizedNFC is set when the content was not already in Unicode NFC.
	FileNormalizedNFC
)

// File captures metadata and content for a single log file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Flags   FileFlags
}

// LineCol represents a human-readable position in a file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
