package corpus

import (
	"strings"

	"github.com/backmassage/namecorpus/internal/catalog"
)

// Header lines that start every edge-case file.
const (
	EdgeHeader         = "Edge case test file"
	EdgeFallbackHeader = EdgeHeader + " (creation failed)"
)

// ContentFunc produces the body written for a candidate.
type ContentFunc func(c catalog.Candidate) []byte

// EdgeContent is the self-describing body of a successfully created
// edge-case file.
func EdgeContent(c catalog.Candidate) []byte {
	return []byte(EdgeHeader + "\n" +
		"Original name: " + c.Name + "\n" +
		"Created for testing file renaming applications.\n" +
		"Contains challenging characters or patterns.\n")
}

// FallbackContent is the body of a fallback file: the intended name and the
// reason it could not be used.
func FallbackContent(name string, err error) []byte {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	return []byte(EdgeFallbackHeader + "\n" +
		"Intended name: " + name + "\n" +
		"Error: " + reason + "\n")
}

const defaultTypicalContent = "Sample file content for testing purposes."

var typicalContentByExt = map[string]string{
	".txt":  "This is a text document with some sample content.\nUsed for testing file renaming applications.",
	".doc":  "Microsoft Word document content placeholder.\nContains formatted text and paragraphs.",
	".pdf":  "PDF document content placeholder.\nPortable Document Format file.",
	".xlsx": "Excel spreadsheet content placeholder.\nContains rows and columns of data.",
	".ppt":  "PowerPoint presentation content placeholder.\nContains slides and multimedia elements.",
	".jpg":  "JPEG image file content placeholder.\nCompressed image format.",
	".png":  "PNG image file content placeholder.\nLossless image format with transparency.",
	".mp3":  "MP3 audio file content placeholder.\nCompressed audio format.",
	".mp4":  "MP4 video file content placeholder.\nCompressed video format.",
	".zip":  "ZIP archive file content placeholder.\nCompressed file container.",
	".json": "{\n  \"type\": \"configuration\",\n  \"version\": \"1.0\",\n  \"settings\": {}\n}",
	".csv":  "Name,Type,Size\nFile1,Document,1024\nFile2,Image,2048\nFile3,Video,4096",
	".html": "<!DOCTYPE html>\n<html>\n<head><title>Sample</title></head>\n<body><h1>Sample HTML</h1></body>\n</html>",
	".css":  "body {\n  font-family: Arial, sans-serif;\n  margin: 0;\n  padding: 20px;\n}",
	".js":   "function sampleFunction() {\n  console.log(\"Hello, World!\");\n  return true;\n}",
	".py":   "#!/usr/bin/env python3\n# Sample Python script\ndef main():\n    print(\"Hello, World!\")\n\nif __name__ == \"__main__\":\n    main()",
	".md":   "# Sample Markdown\n\nThis is a **sample** markdown file.\n\n- Item 1\n- Item 2\n- Item 3",
}

// TypicalContent returns canned content for the candidate's extension: the
// text after the last dot, or ".txt" for names without one. Unknown
// extensions get a generic body.
func TypicalContent(c catalog.Candidate) []byte {
	return []byte(typicalContentFor(c.Name))
}

func typicalContentFor(name string) string {
	ext := ".txt"
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = name[i:]
	}
	if body, ok := typicalContentByExt[ext]; ok {
		return body
	}
	return defaultTypicalContent
}
