// Package util holds small helpers shared by the use cases and workers.
package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// ChecksumBytes returns the hex SHA256 checksum of data.
func ChecksumBytes(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// RandomDigits returns n cryptographically random decimal digits.
func RandomDigits(n int) (string, error) {
	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		buf[i] = byte('0' + d.Int64())
	}

	return string(buf), nil
}

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ReferenceCode returns prefix-XXXXXXXX using an alphabet without look-alike characters.
func ReferenceCode(prefix string, length int) (string, error) {
	buf := make([]byte, length)
	size := big.NewInt(int64(len(referenceAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random index")
		}
		buf[i] = referenceAlphabet[idx.Int64()]
	}

	return prefix + "-" + string(buf), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
