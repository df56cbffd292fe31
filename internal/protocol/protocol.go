package protocol

import (
	"encoding/json"

	"github.com/moti-254/chat-service/internal/domain"
)

// Inbound event types.
const (
	TypeUserJoin        = "user_join"
	TypeSendMessage     = "send_message"
	TypeTyping          = "typing"
	TypePrivateMessage  = "private_message" // also used outbound
	TypeJoinRoom        = "join_room"
	TypeMessageReaction = "message_reaction"
)

// Outbound event types.
const (
	TypeUserList       = "user_list"
	TypeUserJoined     = "user_joined"
	TypeUserLeft       = "user_left"
	TypeRoomList       = "room_list"
	TypeMessageHistory = "message_history"
	TypeReceiveMessage = "receive_message"
	TypeNotification   = "new_message_notification"
	TypeTypingUsers    = "typing_users"
	TypeRoomJoined     = "room_joined"
	TypeUserJoinedRoom = "user_joined_room"
	TypeMessageUpdated = "message_updated"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type UserJoinPayload struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

type SendMessagePayload struct {
	Message string `json:"message"`
	Room    string `json:"room"`
}

type TypingPayload struct {
	IsTyping bool   `json:"isTyping"`
	Room     string `json:"room"`
}

type PrivateMessagePayload struct {
	ToUserID string `json:"toUserId"`
	Message  string `json:"message"`
}

type JoinRoomPayload struct {
	Room string `json:"room"`
}

type ReactionPayload struct {
	MessageID string `json:"messageId"`
	Reaction  string `json:"reaction"`
}

// UserEventPayload announces a user joining or leaving the chat.
type UserEventPayload struct {
	Username string `json:"username"`
	ConnID   string `json:"id"`
	UserID   string `json:"userId"`
}

type RoomEventPayload struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// NotificationPayload is the cross-room preview of a new message.
type NotificationPayload struct {
	Sender  string `json:"sender"`
	Room    string `json:"room"`
	Preview string `json:"preview"`
}

func UserList(sessions []domain.Session) Event {
	return Event{Type: TypeUserList, Payload: sessions}
}

func TypingUsers(names []string) Event {
	return Event{Type: TypeTypingUsers, Payload: names}
}

// Decode re-marshals a loosely typed payload into dst. Fields absent from
// the wire payload keep their zero values.
func Decode(payload any, dst any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, dst)
}
