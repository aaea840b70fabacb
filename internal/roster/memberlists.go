package roster

import (
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/smallbiznis/photohub/internal/config"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Lists carries the auxiliary name lists consulted while scraping: a
// scraped display name not on the current list is a former member; the
// other lists mark prospective members and coaches/mentors.
type Lists struct {
	Current     []string `mapstructure:"current"`
	Prospective []string `mapstructure:"prospective"`
	Coaches     []string `mapstructure:"coaches"`
}

// Memberlists loads the lists from memberlists.yml and hot-reloads on file
// change. Lookups match a record's exact display name.
type Memberlists struct {
	log     *zap.Logger
	current atomic.Value // holds Lists
}

// NewMemberlists reads memberlists.yml from the configured path. A missing
// file is not an error: with no current list every scraped member counts as
// current.
func NewMemberlists(cfg config.Config, log *zap.Logger) (*Memberlists, error) {
	named := log.Named("roster.memberlists")

	v := viper.New()
	v.SetConfigName("memberlists")
	v.SetConfigType("yml")
	v.AddConfigPath(cfg.MemberlistsPath)
	v.AddConfigPath(".")

	m := &Memberlists{log: named}
	m.current.Store(Lists{})

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		named.Info("no memberlists file found, treating all scraped members as current")
		return m, nil
	}

	var lists Lists
	if err := v.Unmarshal(&lists); err != nil {
		return nil, err
	}
	m.current.Store(lists)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Lists
		if err := v.Unmarshal(&updated); err != nil {
			named.Warn("memberlists reload failed, keeping previous lists", zap.Error(err))
			return
		}
		m.current.Store(updated)
		named.Info("memberlists reloaded", zap.String("file", e.Name))
	})

	return m, nil
}

func (m *Memberlists) lists() Lists { return m.current.Load().(Lists) }

// IsCurrent reports whether displayName is on the current-member list.
// An empty list means the collaborator supplied no data, so everyone
// scraped from the roster counts as current.
func (m *Memberlists) IsCurrent(displayName string, includeProspective bool) bool {
	l := m.lists()
	if len(l.Current) == 0 {
		return true
	}
	if contains(l.Current, displayName) {
		return true
	}
	return includeProspective && contains(l.Prospective, displayName)
}

// IsProspective reports whether displayName is on the prospective list.
func (m *Memberlists) IsProspective(displayName string) bool {
	return contains(m.lists().Prospective, displayName)
}

// IsCoach reports whether displayName is on the coaches list.
func (m *Memberlists) IsCoach(displayName string) bool {
	return contains(m.lists().Coaches, displayName)
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
