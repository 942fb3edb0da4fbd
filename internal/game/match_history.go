package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/fileutil"
)

// MatchHistoryWriter interface for writing match history
type MatchHistoryWriter interface {
	WriteMatchHistory(matchID string, content string) error
}

// FileMatchHistoryWriter writes each match history to its own file
type FileMatchHistoryWriter struct {
	directory string
}

// NewFileMatchHistoryWriter creates a new file-based match history writer
func NewFileMatchHistoryWriter(directory string) *FileMatchHistoryWriter {
	return &FileMatchHistoryWriter{directory: directory}
}

// WriteMatchHistory writes match history to a file
func (w *FileMatchHistoryWriter) WriteMatchHistory(matchID string, content string) error {
	if err := os.MkdirAll(w.directory, 0o755); err != nil {
		return fmt.Errorf("failed to create match history directory: %w", err)
	}

	filename := filepath.Join(w.directory, fmt.Sprintf("match_%s.txt", matchID))
	if err := fileutil.WriteFileAtomic(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write match history file: %w", err)
	}

	return nil
}

// RoundRecord is the transcript of one round
type RoundRecord struct {
	Round      int
	Reshuffled bool
	Lines      []string
	Outcome    Outcome
	Balance    int
}

// MatchHistory records every round of a match from engine events and saves
// a text transcript when the match ends. Hole cards appear only once the
// dealer turns them up, exactly as the player saw the table.
type MatchHistory struct {
	MatchID      string
	Match        int
	StartTime    time.Time
	StartBalance int
	RichBalance  int
	Rounds       []RoundRecord
	End          *MatchEndEvent

	formatter *EventFormatter
	writer    MatchHistoryWriter
	logger    *log.Logger

	// exhaustion notice carried into the replayed round
	replayNote string
}

// NewMatchHistory creates a recorder that saves finished matches with writer
func NewMatchHistory(writer MatchHistoryWriter, playerName string, logger *log.Logger) *MatchHistory {
	return &MatchHistory{
		formatter: NewEventFormatter(FormattingOptions{PlayerName: playerName}),
		writer:    writer,
		logger:    logger.WithPrefix("history"),
	}
}

// OnEvent implements EventSubscriber interface
func (mh *MatchHistory) OnEvent(event GameEvent) {
	switch e := event.(type) {
	case MatchStartEvent:
		mh.MatchID = e.MatchID
		mh.Match = e.Match
		mh.StartTime = e.Timestamp()
		mh.StartBalance = e.Balance
		mh.RichBalance = e.RichBalance
		mh.Rounds = nil
		mh.End = nil
		mh.replayNote = ""

	case RoundStartEvent:
		record := RoundRecord{Round: e.Round, Reshuffled: e.Reshuffled}
		if mh.replayNote != "" {
			record.Lines = append(record.Lines, mh.replayNote)
			mh.replayNote = ""
		}
		mh.Rounds = append(mh.Rounds, record)

	case DeckExhaustedEvent:
		// the aborted round never resolved and is played again from scratch
		if len(mh.Rounds) > 0 {
			mh.Rounds = mh.Rounds[:len(mh.Rounds)-1]
		}
		mh.replayNote = mh.formatter.Format(e)

	case DealEvent, PlayerActionEvent, DealerRevealEvent, DealerActionEvent:
		if round := mh.current(); round != nil {
			round.Lines = append(round.Lines, mh.formatter.Format(e))
		}

	case RoundEndEvent:
		if round := mh.current(); round != nil {
			round.Outcome = e.Outcome
			round.Balance = e.Balance
		}

	case MatchEndEvent:
		mh.End = &e
		if err := mh.SaveToFile(); err != nil {
			mh.logger.Error("Failed to save match history", "match", mh.MatchID, "error", err)
		}
	}
}

// current is the round being recorded, if any
func (mh *MatchHistory) current() *RoundRecord {
	if len(mh.Rounds) == 0 {
		return nil
	}
	return &mh.Rounds[len(mh.Rounds)-1]
}

// GenerateHistoryText renders the match as plain text
func (mh *MatchHistory) GenerateHistoryText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== MATCH %s ===\n", mh.MatchID)
	fmt.Fprintf(&b, "Date: %s\n", mh.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Match: %d\n", mh.Match)
	fmt.Fprintf(&b, "Stake: $%d, rich at $%d\n\n", mh.StartBalance, mh.RichBalance)

	for _, round := range mh.Rounds {
		fmt.Fprintf(&b, "*** ROUND %d ***\n", round.Round)
		if round.Reshuffled {
			b.WriteString("(new deck)\n")
		}
		for _, line := range round.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Result: %s, balance $%d\n\n", round.Outcome, round.Balance)
	}

	if mh.End != nil {
		b.WriteString(mh.formatter.FormatMatchEnd(*mh.End))
		b.WriteString("\n")
	}

	b.WriteString("=== END MATCH ===\n")
	return b.String()
}

// SaveToFile saves the match history using the configured writer
func (mh *MatchHistory) SaveToFile() error {
	return mh.writer.WriteMatchHistory(mh.MatchID, mh.GenerateHistoryText())
}
