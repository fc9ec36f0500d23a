package multipart

import "fmt"

func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

func appendHeaderLine(buf []byte, key string, value interface{}) []byte {
	buf = append(buf, key...)
	buf = append(buf, ':', ' ')
	buf = append(buf, stringifyHeaderValue(value)...)
	return appendCRLF(buf)
}

func stringifyHeaderValue(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func appendDataContentDisposition(buf []byte, name string) []byte {
	buf = append(buf, `Content-Disposition: form-data; name="`...)
	buf = append(buf, escapeQuotes(name)...)
	buf = append(buf, '"')
	buf = appendCRLF(buf)
	return appendCRLF(buf)
}

func appendFileContentDisposition(buf []byte, name, filename string) []byte {
	buf = append(buf, `Content-Disposition: form-data; name="`...)
	buf = append(buf, escapeQuotes(name)...)
	buf = append(buf, `"; filename="`...)
	buf = append(buf, escapeQuotes(filename)...)
	buf = append(buf, '"')
	buf = appendCRLF(buf)
	return appendCRLF(buf)
}
