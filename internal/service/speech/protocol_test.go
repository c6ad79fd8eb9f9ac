package speech

import (
	"bytes"
	"testing"
)

func TestHeaderEncodeDecode(t *testing.T) {
	header := newHeader(FullClientRequest, PositiveSequenceNumber, JSONSerialization, GzipCompression)

	decoded, err := DecodeHeader(header.Encode())
	if err != nil {
		t.Fatalf("DecodeHeader failed: %v", err)
	}

	if decoded.MessageType != FullClientRequest {
		t.Errorf("message type = %d, want %d", decoded.MessageType, FullClientRequest)
	}
	if decoded.MessageFlags != PositiveSequenceNumber {
		t.Errorf("message flags = %d, want %d", decoded.MessageFlags, PositiveSequenceNumber)
	}
	if decoded.SerializationMethod != JSONSerialization {
		t.Errorf("serialization = %d, want %d", decoded.SerializationMethod, JSONSerialization)
	}
	if decoded.CompressionMethod != GzipCompression {
		t.Errorf("compression = %d, want %d", decoded.CompressionMethod, GzipCompression)
	}
}

func TestDecodeHeaderTooShort(t *testing.T) {
	if _, err := DecodeHeader([]byte{0x11, 0x10}); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestFullClientRequestRoundTrip(t *testing.T) {
	payload := []byte(`{"req_params":{"text":"hello"}}`)

	encoded, err := EncodeMessage(NewFullClientRequest(payload, NoCompression))
	if err != nil {
		t.Fatalf("EncodeMessage failed: %v", err)
	}

	decoded, err := DecodeMessage(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("DecodeMessage failed: %v", err)
	}

	if decoded.Header.MessageType != FullClientRequest {
		t.Errorf("message type = %d, want %d", decoded.Header.MessageType, FullClientRequest)
	}
	if !bytes.Equal(decoded.Payload, payload) {
		t.Errorf("payload = %q, want %q", decoded.Payload, payload)
	}
}

func TestAudioOnlyRequestSequences(t *testing.T) {
	tests := []struct {
		name      string
		sequence  int32
		isLast    bool
		wantFlags MessageFlags
		wantSeq   int32
	}{
		{"middle chunk", 3, false, PositiveSequenceNumber, 3},
		{"last chunk", 5, true, NegativeSequenceNumber, -5},
		{"last without sequence", 0, true, LastPacketNoSequence, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewAudioOnlyRequest([]byte{0x01, 0x02}, tt.sequence, tt.isLast, NoCompression)

			if msg.Header.MessageFlags != tt.wantFlags {
				t.Errorf("flags = %d, want %d", msg.Header.MessageFlags, tt.wantFlags)
			}
			if msg.Sequence != tt.wantSeq {
				t.Errorf("sequence = %d, want %d", msg.Sequence, tt.wantSeq)
			}
			if got := msg.IsLastPacket(); got != tt.isLast {
				t.Errorf("IsLastPacket() = %v, want %v", got, tt.isLast)
			}

			encoded, err := EncodeMessage(msg)
			if err != nil {
				t.Fatalf("EncodeMessage failed: %v", err)
			}
			decoded, err := DecodeMessage(bytes.NewReader(encoded))
			if err != nil {
				t.Fatalf("DecodeMessage failed: %v", err)
			}
			if decoded.Sequence != tt.wantSeq {
				t.Errorf("decoded sequence = %d, want %d", decoded.Sequence, tt.wantSeq)
			}
			if decoded.IsLastPacket() != tt.isLast {
				t.Errorf("decoded IsLastPacket() = %v, want %v", decoded.IsLastPacket(), tt.isLast)
			}
		})
	}
}

func TestCompressionRoundTrip(t *testing.T) {
	original := bytes.Repeat([]byte("audio-frame-data "), 64)

	compressed, err := CompressPayload(original, GzipCompression)
	if err != nil {
		t.Fatalf("CompressPayload failed: %v", err)
	}
	if len(compressed) >= len(original) {
		t.Errorf("compressed size %d not smaller than original %d", len(compressed), len(original))
	}

	decompressed, err := DecompressPayload(compressed, GzipCompression)
	if err != nil {
		t.Fatalf("DecompressPayload failed: %v", err)
	}
	if !bytes.Equal(decompressed, original) {
		t.Error("round trip did not preserve payload")
	}
}

func TestNoCompressionPassthrough(t *testing.T) {
	data := []byte{0xDE, 0xAD}

	out, err := CompressPayload(data, NoCompression)
	if err != nil {
		t.Fatalf("CompressPayload failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("NoCompression changed the payload")
	}
}

func TestFormatSupported(t *testing.T) {
	for _, format := range []string{"wav", "mp3", "ogg", "webm", "m4a", "pcm"} {
		if !FormatSupported(format) {
			t.Errorf("FormatSupported(%q) = false, want true", format)
		}
	}
	for _, format := range []string{"flac", "mov", "", "exe"} {
		if FormatSupported(format) {
			t.Errorf("FormatSupported(%q) = true, want false", format)
		}
	}
}
