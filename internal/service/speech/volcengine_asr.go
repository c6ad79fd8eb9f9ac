package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mirelabs/zelda/backend/internal/config"
	speechmodel "github.com/mirelabs/zelda/backend/internal/model/speech"
)

const asrEndpoint = "wss://openspeech.bytedance.com/api/v3/sauc/bigmodel_nostream"

// asrClient transcribes a complete audio clip through the provider's
// streaming-input recognition websocket.
type asrClient struct {
	cfg    config.SpeechConfig
	dialer *websocket.Dialer
}

func newASRClient(cfg config.SpeechConfig) *asrClient {
	return &asrClient{
		cfg: cfg,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 30 * time.Second,
		},
	}
}

type asrRequestPayload struct {
	User struct {
		UID string `json:"uid,omitempty"`
	} `json:"user,omitempty"`
	Audio struct {
		Language string `json:"language,omitempty"`
		Format   string `json:"format"`
		Codec    string `json:"codec,omitempty"`
		Rate     int    `json:"rate,omitempty"`
		Bits     int    `json:"bits,omitempty"`
		Channel  int    `json:"channel,omitempty"`
	} `json:"audio"`
	Request struct {
		ModelName      string `json:"model_name"`
		EnableITN      bool   `json:"enable_itn,omitempty"`
		EnablePunc     bool   `json:"enable_punc,omitempty"`
		ShowUtterances bool   `json:"show_utterances,omitempty"`
		ResultType     string `json:"result_type,omitempty"`
		EndWindowSize  int    `json:"end_window_size,omitempty"`
	} `json:"request"`
}

type asrServerMessage struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Sequence int    `json:"sequence"`
	Result   struct {
		Text       string `json:"text"`
		Utterances []struct {
			Text     string `json:"text"`
			Definite bool   `json:"definite"`
		} `json:"utterances,omitempty"`
	} `json:"result,omitempty"`
	AudioInfo struct {
		Duration int64 `json:"duration"`
	} `json:"audio_info,omitempty"`
}

// Transcribe sends the full clip and waits for the final transcript frame.
func (c *asrClient) Transcribe(ctx context.Context, req *speechmodel.ASRRequest) (*speechmodel.ASRResponse, error) {
	appID, token, err := resolveCredentials(c.cfg)
	if err != nil {
		return nil, err
	}

	audioData, err := io.ReadAll(req.AudioData)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio payload: %w", err)
	}
	if len(audioData) == 0 {
		return nil, ErrEmptyAudio
	}

	header := http.Header{}
	header.Set("X-Api-App-Key", appID)
	header.Set("X-Api-Access-Key", token)
	header.Set("X-Api-Resource-Id", "volc.bigasr.sauc.duration")
	header.Set("X-Api-Connect-Id", req.SessionID)

	conn, resp, err := c.dialer.DialContext(ctx, asrEndpoint, header)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to recognition websocket: %w", err)
	}
	defer conn.Close()

	if resp != nil {
		if logid := resp.Header.Get("X-Tt-Logid"); logid != "" {
			log.Printf("[asr] connected with logid: %s", logid)
		}
	}

	payloadData, err := json.Marshal(c.buildPayload(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recognition request: %w", err)
	}
	compressedPayload, err := CompressPayload(payloadData, GzipCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to compress recognition request: %w", err)
	}
	messageBytes, err := EncodeMessage(NewFullClientRequest(compressedPayload, GzipCompression))
	if err != nil {
		return nil, fmt.Errorf("failed to encode recognition request: %w", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, messageBytes); err != nil {
		return nil, fmt.Errorf("failed to send recognition request: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Receive concurrently so a server-side error cancels the upload
	// instead of blocking behind unsent chunks.
	respCh := make(chan *speechmodel.ASRResponse, 1)
	recvErrCh := make(chan error, 1)
	go func() {
		result, err := c.receiveTranscript(ctx, conn, req.SessionID)
		if err != nil {
			recvErrCh <- err
			return
		}
		respCh <- result
	}()

	sendErrCh := make(chan error, 1)
	go func() {
		sendErrCh <- c.sendAudio(ctx, conn, audioData)
	}()

	var sendDone bool
	for {
		select {
		case err := <-sendErrCh:
			sendDone = true
			if err != nil {
				cancel()
				return nil, fmt.Errorf("failed to send audio data: %w", err)
			}
		case result := <-respCh:
			cancel()
			return result, nil
		case err := <-recvErrCh:
			cancel()
			return nil, err
		case <-ctx.Done():
			if !sendDone {
				return nil, ctx.Err()
			}
		}
	}
}

func (c *asrClient) buildPayload(req *speechmodel.ASRRequest) *asrRequestPayload {
	payload := &asrRequestPayload{}

	payload.User.UID = req.SessionID

	payload.Audio.Format = req.Format
	if payload.Audio.Format == "" {
		payload.Audio.Format = "wav"
	}
	payload.Audio.Language = req.Language
	if payload.Audio.Language == "" {
		payload.Audio.Language = c.cfg.ASRLanguage
	}
	payload.Audio.Codec = "raw"
	payload.Audio.Rate = 16000
	payload.Audio.Bits = 16
	payload.Audio.Channel = 1

	payload.Request.ModelName = "bigmodel"
	payload.Request.EnableITN = true
	payload.Request.EnablePunc = true
	payload.Request.ShowUtterances = true
	payload.Request.ResultType = "full"
	payload.Request.EndWindowSize = 800

	return payload
}

// sendAudio uploads the clip in ~200ms chunks. The config frame holds
// sequence 1, so audio starts at 2; the final chunk flips to a negative
// sequence.
func (c *asrClient) sendAudio(ctx context.Context, conn *websocket.Conn, audioData []byte) error {
	const chunkSize = 6400 // 16kHz 16-bit mono, 200ms

	sequence := int32(2)
	for i := 0; i < len(audioData); i += chunkSize {
		end := i + chunkSize
		if end > len(audioData) {
			end = len(audioData)
		}
		isLast := end >= len(audioData)

		compressedChunk, err := CompressPayload(audioData[i:end], GzipCompression)
		if err != nil {
			return fmt.Errorf("failed to compress audio chunk: %w", err)
		}

		msgBytes, err := EncodeMessage(NewAudioOnlyRequest(compressedChunk, sequence, isLast, GzipCompression))
		if err != nil {
			return fmt.Errorf("failed to encode audio chunk: %w", err)
		}
		if err := conn.WriteMessage(websocket.BinaryMessage, msgBytes); err != nil {
			return fmt.Errorf("failed to send audio chunk: %w", err)
		}

		sequence++
		if isLast {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}

	return nil
}

func (c *asrClient) receiveTranscript(ctx context.Context, conn *websocket.Conn, sessionID string) (*speechmodel.ASRResponse, error) {
	var (
		finalText string
		duration  int64
	)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("failed to read recognition response: %w", err)
		}

		msg, err := DecodeMessage(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode recognition frame: %w", err)
		}

		switch msg.Header.MessageType {
		case ErrorMessage:
			payload, err := DecompressPayload(msg.Payload, msg.Header.CompressionMethod)
			if err != nil {
				return nil, fmt.Errorf("recognition error frame decode failed: %w", err)
			}
			return nil, fmt.Errorf("recognition error: %s", string(payload))

		case FullServerResponse:
			payload, err := DecompressPayload(msg.Payload, msg.Header.CompressionMethod)
			if err != nil {
				return nil, fmt.Errorf("failed to decompress recognition payload: %w", err)
			}

			var serverResp asrServerMessage
			if err := json.Unmarshal(payload, &serverResp); err != nil {
				log.Printf("[asr] failed to unmarshal response: %v", err)
				continue
			}

			// 20000000 is the provider's success code.
			if serverResp.Code != 0 && serverResp.Code != 20000000 {
				return nil, fmt.Errorf("recognition api error %d: %s", serverResp.Code, serverResp.Message)
			}

			text := serverResp.Result.Text
			if text == "" && len(serverResp.Result.Utterances) > 0 {
				parts := make([]string, 0, len(serverResp.Result.Utterances))
				for _, u := range serverResp.Result.Utterances {
					if u.Text != "" {
						parts = append(parts, u.Text)
					}
				}
				text = strings.Join(parts, " ")
			}
			if text != "" {
				finalText = text
			}

			if serverResp.AudioInfo.Duration > 0 {
				duration = serverResp.AudioInfo.Duration
			}

			if msg.IsLastPacket() || serverResp.Sequence < 0 {
				if finalText == "" {
					log.Printf("[asr] empty transcript for session %s", sessionID)
				}
				return &speechmodel.ASRResponse{
					SessionID: sessionID,
					Text:      finalText,
					Duration:  duration,
					RequestID: sessionID,
					CreatedAt: time.Now(),
				}, nil
			}

		default:
			// Audio acks and other frame types carry nothing we need.
		}
	}
}
