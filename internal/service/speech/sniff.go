package speech

import "bytes"

// matchesFormat checks the payload's leading bytes against the claimed
// container format, so mislabeled uploads fail fast instead of surfacing
// as provider errors. Raw pcm has no signature and always passes.
func matchesFormat(data []byte, format string) bool {
	switch format {
	case "wav":
		return len(data) >= 12 &&
			bytes.HasPrefix(data, []byte("RIFF")) &&
			bytes.Equal(data[8:12], []byte("WAVE"))
	case "mp3":
		if bytes.HasPrefix(data, []byte("ID3")) {
			return true
		}
		// Frame sync: 11 set bits.
		return len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0
	case "ogg":
		return bytes.HasPrefix(data, []byte("OggS"))
	case "webm":
		// EBML header shared by webm/mkv.
		return bytes.HasPrefix(data, []byte{0x1A, 0x45, 0xDF, 0xA3})
	case "m4a":
		return len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp"))
	case "pcm":
		return true
	default:
		return false
	}
}
