package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BigAmount is an arbitrary-precision token amount backed by a NUMERIC(78,0)
// column. It travels as a decimal string everywhere outside the process —
// SQL and JSON — so 18-decimal wei values never touch floating point.
type BigAmount struct {
	big.Int
}

// NewBigAmount parses a non-negative decimal integer string.
func NewBigAmount(s string) (BigAmount, error) {
	var a BigAmount
	if _, ok := a.SetString(s, 10); !ok {
		return BigAmount{}, fmt.Errorf("invalid amount %q", s)
	}
	if a.Sign() < 0 {
		return BigAmount{}, fmt.Errorf("negative amount %q", s)
	}
	return a, nil
}

// Value implements the driver.Valuer interface for BigAmount
func (a BigAmount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements the sql.Scanner interface for BigAmount
func (a *BigAmount) Scan(value interface{}) error {
	if value == nil {
		a.SetInt64(0)
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	case int64:
		a.SetInt64(v)
		return nil
	default:
		return fmt.Errorf("unsupported type for BigAmount: %T", value)
	}

	if _, ok := a.SetString(str, 10); !ok {
		return fmt.Errorf("invalid numeric value %q", str)
	}
	return nil
}

// MarshalJSON encodes the amount as a decimal string
func (a BigAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a decimal string or a bare JSON number
func (a *BigAmount) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "" || str == "null" {
		a.SetInt64(0)
		return nil
	}
	if _, ok := a.SetString(str, 10); !ok {
		return fmt.Errorf("invalid amount %q", str)
	}
	return nil
}

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	quoted := make([]string, len(a))
	for i, s := range a {
		quoted[i] = `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	elems, err := parseArrayLiteral(str)
	if err != nil {
		return err
	}
	*a = elems
	return nil
}

// TimeArray is a custom type for PostgreSQL timestamptz[] arrays
type TimeArray []time.Time

// Postgres renders timestamptz array elements in a handful of layouts
// depending on precision and session timezone.
var timeArrayLayouts = []string{
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07",
	time.RFC3339Nano,
}

// Value implements the driver.Valuer interface for TimeArray
func (a TimeArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	elems := make([]string, len(a))
	for i, t := range a {
		elems[i] = `"` + t.UTC().Format("2006-01-02 15:04:05.999999-07") + `"`
	}
	return "{" + strings.Join(elems, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for TimeArray
func (a *TimeArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for TimeArray: %T", value)
	}

	elems, err := parseArrayLiteral(str)
	if err != nil {
		return err
	}

	times := make([]time.Time, 0, len(elems))
	for _, e := range elems {
		var (
			t        time.Time
			parseErr error
		)
		for _, layout := range timeArrayLayouts {
			t, parseErr = time.Parse(layout, e)
			if parseErr == nil {
				break
			}
		}
		if parseErr != nil {
			return fmt.Errorf("invalid timestamp in array: %q", e)
		}
		times = append(times, t)
	}
	*a = times
	return nil
}

// parseArrayLiteral splits a Postgres array literal into its elements,
// honoring double-quoted elements and backslash escapes.
func parseArrayLiteral(str string) ([]string, error) {
	if str == "" || str == "{}" {
		return []string{}, nil
	}
	if len(str) < 2 || str[0] != '{' || str[len(str)-1] != '}' {
		return nil, fmt.Errorf("malformed array literal: %q", str)
	}
	body := str[1 : len(str)-1]
	if body == "" {
		return []string{}, nil
	}

	var (
		elems    []string
		current  strings.Builder
		inQuotes bool
		escaped  bool
	)
	for _, r := range body {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			elems = append(elems, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	elems = append(elems, current.String())
	return elems, nil
}

// Task kinds accepted in an airdrop task catalog.
const (
	TaskKindFollow   = "follow"
	TaskKindRetweet  = "retweet"
	TaskKindLike     = "like"
	TaskKindComment  = "comment"
	TaskKindExternal = "external"
	TaskKindCustom   = "custom"
)

// Task is one entry in an airdrop's task catalog. RewardAmount is carried for
// display only; payouts always use the campaign-wide task_reward_amount.
type Task struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Kind         string  `json:"kind"`
	URL          *string `json:"url,omitempty"`
	RewardAmount *string `json:"reward_amount,omitempty"`
}

// TaskList is a task catalog persisted as a JSONB column
type TaskList []Task

// Value implements the driver.Valuer interface for TaskList
func (t TaskList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]Task{})
	}
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface for TaskList
func (t *TaskList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for TaskList")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*t = TaskList{}
		return nil
	}
	return json.Unmarshal(bytes, t)
}

// Airdrop statuses.
const (
	AirdropStatusPending   = "pending"
	AirdropStatusActive    = "active"
	AirdropStatusCompleted = "completed"
	AirdropStatusCancelled = "cancelled"
)

// Airdrop represents one reward campaign: a token pool plus its task and
// check-in reward schedule. Counter fields are maintained with atomic
// increments; total_distributed only moves inside a claim transaction.
type Airdrop struct {
	ID                     uuid.UUID   `db:"id" json:"id"`
	Owner                  string      `db:"owner" json:"owner"`
	Name                   string      `db:"name" json:"name"`
	TokenAddress           string      `db:"token_address" json:"token_address"`
	TotalAmount            BigAmount   `db:"total_amount" json:"total_amount"`
	Tasks                  TaskList    `db:"tasks" json:"tasks"`
	TaskRewardAmount       BigAmount   `db:"task_reward_amount" json:"task_reward_amount"`
	CheckinRewardAmount    BigAmount   `db:"checkin_reward_amount" json:"checkin_reward_amount"`
	Status                 string      `db:"status" json:"status"`
	TotalDistributed       BigAmount   `db:"total_distributed" json:"total_distributed"`
	ParticipantsCount      int         `db:"participants_count" json:"participants_count"`
	TotalTasksCompleted    int         `db:"total_tasks_completed" json:"total_tasks_completed"`
	TotalCheckinsCompleted int         `db:"total_checkins_completed" json:"total_checkins_completed"`
	Participants           StringArray `db:"participants" json:"participants"`
	Metadata               JSONB       `db:"metadata" json:"metadata,omitempty"`
	ExpiresAt              *time.Time  `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt              time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time   `db:"updated_at" json:"updated_at"`
}

// Participant represents one wallet's accrual and claim state within one
// airdrop. TotalEarnings is always recomputed from its two parts, never
// incremented on its own.
type Participant struct {
	ID                uuid.UUID   `db:"id" json:"id"`
	AirdropID         uuid.UUID   `db:"airdrop_id" json:"airdrop_id"`
	Wallet            string      `db:"wallet" json:"wallet"`
	CompletedTasks    StringArray `db:"completed_tasks" json:"completed_tasks"`
	TasksCompleted    int         `db:"tasks_completed" json:"tasks_completed"`
	TasksEarnings     BigAmount   `db:"tasks_earnings" json:"tasks_earnings"`
	CheckinDates      TimeArray   `db:"checkin_dates" json:"checkin_dates"`
	CheckinsCompleted int         `db:"checkins_completed" json:"checkins_completed"`
	CheckinsEarnings  BigAmount   `db:"checkins_earnings" json:"checkins_earnings"`
	TotalEarnings     BigAmount   `db:"total_earnings" json:"total_earnings"`
	HasClaimed        bool        `db:"has_claimed" json:"has_claimed"`
	LastClaimedAt     *time.Time  `db:"last_claimed_at" json:"last_claimed_at,omitempty"`
	MerkleProof       StringArray `db:"merkle_proof" json:"merkle_proof,omitempty"`
	JoinedAt          time.Time   `db:"joined_at" json:"joined_at"`
	UpdatedAt         time.Time   `db:"updated_at" json:"updated_at"`
}

// Transaction kinds recorded in the audit log.
const (
	TransactionTypeSend    = "SEND"
	TransactionTypeClaim   = "CLAIM"
	TransactionTypeCreate  = "CREATE"
	TransactionTypeDeposit = "DEPOSIT"
)

// Transaction statuses.
const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// Transaction is one audit-log record of token movement
type Transaction struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Wallet          string    `db:"wallet" json:"wallet"`
	Type            string    `db:"type" json:"type"`
	Amount          BigAmount `db:"amount" json:"amount"`
	Recipient       *string   `db:"recipient" json:"recipient,omitempty"`
	TokenName       *string   `db:"token_name" json:"token_name,omitempty"`
	TransactionHash *string   `db:"transaction_hash" json:"transaction_hash,omitempty"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// User is an authenticated account holder
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        *string   `db:"email" json:"email,omitempty"`
	Wallet       *string   `db:"wallet" json:"wallet,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	LoginType    string    `db:"login_type" json:"login_type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
