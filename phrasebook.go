package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/gommon/log"
)

// phrasebookData is the on-disk overlay format: keyword lists keyed by
// intent plus response variants keyed by intent. Anything present in the
// overlay replaces the built-in list for that intent.
type phrasebookData struct {
	Keywords  map[string][]string `json:"keywords"`
	Responses map[string][]string `json:"responses"`
}

const helpText = "I can help with:\n" +
	"- Check balance\n" +
	"- Last transaction\n" +
	"- New debit/credit card\n" +
	"- Block/unblock card\n" +
	"- Loan eligibility\n" +
	"- Open new account\n" +
	"Just tell me what you need!"

const loanDocumentsText = "Documents required for any loan:\n" +
	"• Aadhaar Card\n" +
	"• PAN Card\n" +
	"• 6 months bank statement\n" +
	"• Salary slips / income proof\n" +
	"• Address proof\n" +
	"• Passport-size photo\n" +
	"Note: Please visit the nearest branch or call customer care for more details."

func defaultPhrasebook() phrasebookData {
	return phrasebookData{
		Keywords: map[string][]string{
			"help":    {"help", "what can you do", "options"},
			"greet":   {"hi", "hello", "hey", "hii", "good morning", "good afternoon", "good evening"},
			"thanks":  {"thank", "thanks", "thank you", "thx"},
			"goodbye": {"bye", "byee", "byeee", "exit", "quit", "goodbye"},
			"out_of_scope": {
				"movie", "movies", "recipe", "python", "weather", "news", "sports",
			},
			"balance": {"balance"},
			"transaction": {
				"last transaction", "last txn", "previous transaction", "previous txn",
				"latest transaction", "recent transaction", "transaction history",
				"last transaction details", "previous transaction details", "latest txn", "recent txn",
			},
			"new_card": {
				"new card", "get card", "i want a card", "apply card", "want a card",
				"credit card", "debit card",
			},
			"block":   {"block"},
			"unblock": {"unblock", "activate"},
			"transfer": {
				"send money", "transfer", "send amount", "pay", "transfer money",
			},
			"loan_documents": {
				"documents required", "required documents", "loan documents",
				"what are the documents", "documents needed", "loan requirement",
				"requirements for loan",
			},
			"loan":         {"loan"},
			"open_account": {"open account", "new account", "create account"},
			"feedback":     {"drawback", "feedback", "problem", "issue", "not good"},
			"acknowledge":  {"ok", "okay", "k", "okk", "okayy", "fine", "alright", "hmm"},
		},
		Responses: map[string][]string{
			"help": {helpText},
			"greet": {
				"Hello! How can I assist you today?",
				"Hi there! What can I do for you?",
				"Hey! How may I help you today?",
				"Good day! How can I support you?",
				"Welcome! How can I make your banking easier?",
			},
			"thanks": {
				"You're welcome!",
				"Glad I could help!",
				"Anytime — happy to assist.",
				"No problem — always here to help.",
				"My pleasure!",
			},
			"goodbye":        {"Goodbye! Have a great day."},
			"out_of_scope":   {"I'm sorry — I can answer only banking-related questions."},
			"loan_documents": {loanDocumentsText},
			"feedback":       {"Thanks for the feedback — I'll try to improve."},
			"acknowledge":    {"Alright! How can I help you further?"},
			"fallback":       {"Sorry, I didn't understand that. Could you rephrase?"},
		},
	}
}

// exactIntents are matched against the whole utterance rather than searched
// within it: "ok" should not acknowledge an utterance that merely contains it.
var exactIntents = map[string]bool{
	"help":        true,
	"acknowledge": true,
}

// Phrasebook holds the compiled keyword sets and response variants, with an
// optional JSON overlay file that is mod-time checked on access and watched
// with fsnotify for hot reload.
type Phrasebook struct {
	mu        sync.RWMutex
	path      string
	modTime   time.Time
	loadedAt  time.Time
	sets      map[string]keywordSet
	responses map[string][]string
	watcher   *fsnotify.Watcher
}

func NewPhrasebook(path string) (*Phrasebook, error) {
	pb := &Phrasebook{path: path}
	if err := pb.Reload(); err != nil {
		return nil, err
	}
	if path == "" {
		return pb, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch phrasebook directory: %w", err)
	}
	pb.watcher = watcher
	log.Infof("phrasebook watcher initialized for: %s", path)
	return pb, nil
}

func (pb *Phrasebook) Close() {
	if pb.watcher != nil {
		pb.watcher.Close()
	}
}

// Watch reloads the overlay whenever its file is written or recreated.
// It returns immediately when no overlay file is configured.
func (pb *Phrasebook) Watch() {
	if pb.watcher == nil {
		return
	}
	for {
		select {
		case event, ok := <-pb.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(pb.path) {
				continue
			}
			// Small delay to ensure file write is complete
			time.Sleep(100 * time.Millisecond)
			log.Infof("phrasebook changed: %s, reloading", event.Name)
			if err := pb.Reload(); err != nil {
				log.Warnf("phrasebook reload failed: %v", err)
			}

		case err, ok := <-pb.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("phrasebook watcher error: %v", err)
		}
	}
}

// Reload recompiles the built-in defaults merged with the overlay file.
func (pb *Phrasebook) Reload() error {
	data := defaultPhrasebook()

	var modTime time.Time
	if pb.path != "" {
		raw, err := os.ReadFile(pb.path)
		switch {
		case os.IsNotExist(err):
			// Overlay is optional; defaults carry the full vocabulary.
		case err != nil:
			return fmt.Errorf("failed to load phrasebook: %w", err)
		default:
			var overlay phrasebookData
			if err := json.Unmarshal(raw, &overlay); err != nil {
				return fmt.Errorf("failed to parse phrasebook: %w", err)
			}
			for intent, keywords := range overlay.Keywords {
				data.Keywords[intent] = keywords
			}
			for intent, variants := range overlay.Responses {
				data.Responses[intent] = variants
			}
			if info, err := os.Stat(pb.path); err == nil {
				modTime = info.ModTime()
			}
		}
	}

	sets := make(map[string]keywordSet, len(data.Keywords))
	for intent, keywords := range data.Keywords {
		mode := matchContains
		if exactIntents[intent] {
			mode = matchExact
		}
		sets[intent] = compileKeywordSet(mode, keywords)
	}

	pb.mu.Lock()
	pb.sets = sets
	pb.responses = data.Responses
	pb.modTime = modTime
	pb.loadedAt = time.Now()
	pb.mu.Unlock()

	log.Infof("phrasebook loaded: %d keyword sets, %d response groups", len(sets), len(data.Responses))
	return nil
}

// refreshIfModified reloads when the overlay file changed since the last
// compile, covering edits that slip past the watcher.
func (pb *Phrasebook) refreshIfModified() {
	if pb.path == "" {
		return
	}
	info, err := os.Stat(pb.path)
	if err != nil {
		return
	}
	pb.mu.RLock()
	stale := info.ModTime().After(pb.modTime)
	pb.mu.RUnlock()
	if stale {
		if err := pb.Reload(); err != nil {
			log.Warnf("phrasebook reload failed: %v", err)
		}
	}
}

func (pb *Phrasebook) set(intent string) keywordSet {
	pb.refreshIfModified()
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.sets[intent]
}

func (pb *Phrasebook) variants(intent string) []string {
	pb.refreshIfModified()
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.responses[intent]
}

// Info summarizes the compiled state for the admin endpoint.
func (pb *Phrasebook) Info() map[string]interface{} {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	keywords := make(map[string]int, len(pb.sets))
	for intent, ks := range pb.sets {
		keywords[intent] = len(ks.entries)
	}
	responses := make(map[string]int, len(pb.responses))
	for intent, variants := range pb.responses {
		responses[intent] = len(variants)
	}
	return map[string]interface{}{
		"overlay_path": pb.path,
		"loaded_at":    pb.loadedAt,
		"keywords":     keywords,
		"responses":    responses,
	}
}
