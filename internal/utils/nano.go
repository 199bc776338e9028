package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Case IDs are 21-character alphanumeric nanoids; the source system's
// 9-character base36 ids had a real collision chance, these do not.
var (
	NanoidSize     = 21
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func NanoID() string {
	return NanoIDSize(NanoidSize)
}

func NanoIDSize(size int) string {
	if size <= 0 {
		size = NanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}
