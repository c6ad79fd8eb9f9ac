package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mirelabs/zelda/backend/internal/config"
	speechmodel "github.com/mirelabs/zelda/backend/internal/model/speech"
)

const ttsEndpoint = "wss://openspeech.bytedance.com/api/v3/tts/unidirectional/stream"

// ttsClient performs one-shot speech synthesis over the provider's
// unidirectional websocket stream.
type ttsClient struct {
	cfg    config.SpeechConfig
	dialer *websocket.Dialer
}

func newTTSClient(cfg config.SpeechConfig) *ttsClient {
	return &ttsClient{
		cfg: cfg,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 30 * time.Second,
		},
	}
}

type ttsRequestPayload struct {
	User struct {
		UID string `json:"uid"`
	} `json:"user"`
	ReqParams struct {
		Speaker     string         `json:"speaker"`
		Text        string         `json:"text"`
		AudioParams ttsAudioParams `json:"audio_params"`
		Language    string         `json:"language,omitempty"`
	} `json:"req_params"`
}

type ttsAudioParams struct {
	Format      string  `json:"format"`
	SampleRate  int     `json:"sample_rate"`
	SpeedRatio  float32 `json:"speed_ratio,omitempty"`
	VolumeRatio float32 `json:"volume_ratio,omitempty"`
}

type ttsServerMessage struct {
	ReqID    string `json:"reqid"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Sequence int    `json:"sequence"`
	Data     string `json:"data"`
	Addition struct {
		Duration string `json:"duration,omitempty"`
	} `json:"addition,omitempty"`
}

// Synthesize converts text into audio bytes. The provider binds voices to
// resource ids, so a mismatch on the first candidate is retried with the
// alternate id before giving up.
func (c *ttsClient) Synthesize(ctx context.Context, req *speechmodel.TTSRequest) (*speechmodel.TTSResponse, error) {
	appID, token, err := resolveCredentials(c.cfg)
	if err != nil {
		return nil, err
	}

	voice := strings.TrimSpace(req.Voice)
	if voice == "" {
		voice = strings.TrimSpace(c.cfg.TTSVoice)
	}

	encoding := strings.TrimSpace(req.Format)
	if encoding == "" || encoding == "wav" {
		encoding = "mp3"
	}

	var lastMismatch error
	for idx, resourceID := range resourceCandidates(voice) {
		resp, attemptErr := c.synthesizeWithResource(ctx, req, appID, token, voice, encoding, resourceID)
		if attemptErr == nil {
			if idx > 0 {
				log.Printf("[tts] voice %s succeeded with fallback resource %s", voice, resourceID)
			}
			return resp, nil
		}

		if isResourceMismatch(attemptErr) {
			log.Printf("[tts] voice %s resource %s mismatch: %v", voice, resourceID, attemptErr)
			lastMismatch = attemptErr
			continue
		}

		return nil, attemptErr
	}

	return nil, lastMismatch
}

func (c *ttsClient) synthesizeWithResource(
	ctx context.Context,
	req *speechmodel.TTSRequest,
	appID, token, voice, encoding, resourceID string,
) (*speechmodel.TTSResponse, error) {
	connectID := uuid.New().String()

	header := http.Header{}
	header.Set("X-Api-App-Key", appID)
	header.Set("X-Api-Access-Key", token)
	header.Set("X-Api-Resource-Id", resourceID)
	header.Set("X-Api-Connect-Id", connectID)

	conn, resp, err := c.dialer.DialContext(ctx, ttsEndpoint, header)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to synthesis websocket: %w", err)
	}
	defer conn.Close()

	if resp != nil {
		if logid := resp.Header.Get("X-Tt-Logid"); logid != "" {
			log.Printf("[tts] connected with logid: %s", logid)
		}
	}

	payload, userUID := c.buildPayload(req, voice, encoding)
	payloadData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesis request: %w", err)
	}

	messageBytes, err := EncodeMessage(NewFullClientRequest(payloadData, NoCompression))
	if err != nil {
		return nil, fmt.Errorf("failed to encode synthesis request: %w", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, messageBytes); err != nil {
		return nil, fmt.Errorf("failed to send synthesis request: %w", err)
	}

	var (
		audioBuffer bytes.Buffer
		reqID       string
		duration    int64
	)

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = userUID
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("failed to read synthesis response: %w", err)
		}

		msg, err := DecodeMessage(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode synthesis frame: %w", err)
		}

		switch msg.Header.MessageType {
		case ErrorMessage:
			payload, err := DecompressPayload(msg.Payload, msg.Header.CompressionMethod)
			if err != nil {
				return nil, fmt.Errorf("synthesis error frame decode failed: %w", err)
			}
			return nil, fmt.Errorf("synthesis error: %s", string(payload))

		case AudioOnlyServerResponse:
			chunk, err := DecompressPayload(msg.Payload, msg.Header.CompressionMethod)
			if err != nil {
				return nil, fmt.Errorf("failed to decompress audio chunk: %w", err)
			}
			audioBuffer.Write(chunk)

		case FullServerResponse:
			framePayload, err := DecompressPayload(msg.Payload, msg.Header.CompressionMethod)
			if err != nil {
				return nil, fmt.Errorf("failed to decompress synthesis payload: %w", err)
			}

			var serverResp ttsServerMessage
			if len(framePayload) > 0 {
				if err := json.Unmarshal(framePayload, &serverResp); err != nil {
					log.Printf("[tts] failed to unmarshal response payload: %v", err)
				} else {
					// 3000 is the provider's "in progress" code.
					if serverResp.Code != 0 && serverResp.Code != 3000 {
						return nil, fmt.Errorf("synthesis api error %d: %s", serverResp.Code, serverResp.Message)
					}
					if serverResp.ReqID != "" {
						reqID = serverResp.ReqID
					}
					if serverResp.Addition.Duration != "" {
						if parsed, err := strconv.ParseInt(serverResp.Addition.Duration, 10, 64); err == nil {
							duration = parsed
						}
					}
					if serverResp.Data != "" {
						chunk, err := base64.StdEncoding.DecodeString(serverResp.Data)
						if err != nil {
							return nil, fmt.Errorf("failed to decode base64 audio chunk: %w", err)
						}
						audioBuffer.Write(chunk)
					}
				}
			}

			finishedByEvent := msg.Header.MessageFlags == WithEvent && msg.EventType == EventTypeSessionFinished
			if finishedByEvent || msg.IsLastPacket() || serverResp.Sequence < 0 {
				if audioBuffer.Len() == 0 {
					return nil, fmt.Errorf("synthesis produced no audio")
				}
				if reqID == "" {
					reqID = connectID
				}
				return &speechmodel.TTSResponse{
					SessionID: sessionID,
					AudioData: audioBuffer.Bytes(),
					Duration:  duration,
					Format:    encoding,
					RequestID: reqID,
					CreatedAt: time.Now(),
				}, nil
			}

		default:
			log.Printf("[tts] unexpected message type: %d", msg.Header.MessageType)
		}
	}
}

func (c *ttsClient) buildPayload(req *speechmodel.TTSRequest, voice, encoding string) (*ttsRequestPayload, string) {
	payload := &ttsRequestPayload{}

	userUID := strings.TrimSpace(req.SessionID)
	if userUID == "" {
		userUID = uuid.New().String()
	}
	payload.User.UID = userUID

	payload.ReqParams.Speaker = voice
	payload.ReqParams.Text = req.Text
	payload.ReqParams.AudioParams.Format = encoding
	payload.ReqParams.AudioParams.SampleRate = 24000

	speed := req.Speed
	if speed <= 0 {
		speed = c.cfg.TTSSpeed
	}
	if speed > 0 && speed != 1.0 {
		payload.ReqParams.AudioParams.SpeedRatio = speed
	}

	volume := req.Volume
	if volume <= 0 {
		volume = c.cfg.TTSVolume
	}
	if volume > 0 && volume != 1.0 {
		payload.ReqParams.AudioParams.VolumeRatio = volume
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = strings.TrimSpace(c.cfg.TTSLanguage)
	}
	payload.ReqParams.Language = language

	return payload, userUID
}

// resourceCandidates picks resource ids compatible with a voice name. Big
// model voices carry planet-themed suffixes; cloned voices start with S_.
func resourceCandidates(voice string) []string {
	const (
		defaultResource = "volc.service_type.10029"
		megaResource    = "volc.megatts.default"
		seedResource    = "seed-tts-2.0"
	)

	if strings.HasPrefix(voice, "S_") {
		return []string{megaResource}
	}

	normalized := strings.ToLower(voice)
	for _, hint := range []string{"bigtts", "seed", "megatts", "jupiter", "venus", "uranus", "saturn"} {
		if strings.Contains(normalized, hint) {
			return []string{seedResource, defaultResource}
		}
	}

	return []string{defaultResource, seedResource}
}

func isResourceMismatch(err error) bool {
	return err != nil && strings.Contains(err.Error(), "resource ID is mismatched with speaker related resource")
}
