package catalog

import "strings"

// FolderType is the category tag on a task's container. It selects the base
// reward tuple for a completion.
type FolderType string

const (
	FolderTrabalho        FolderType = "trabalho"
	FolderEstudos         FolderType = "estudos"
	FolderLazer           FolderType = "lazer"
	FolderTarefasPessoais FolderType = "tarefas_pessoais"
)

// DefaultFolderType is used when input is missing/unrecognized.
const DefaultFolderType = FolderTrabalho

func (f FolderType) IsValid() bool {
	switch f {
	case FolderTrabalho, FolderEstudos, FolderLazer, FolderTarefasPessoais:
		return true
	default:
		return false
	}
}

// ParseFolderType parses user/caller input to a FolderType.
func ParseFolderType(input string) FolderType {
	f := FolderType(strings.TrimSpace(strings.ToLower(input)))
	if f.IsValid() {
		return f
	}
	return DefaultFolderType
}

// Importance is the per-completion severity tag scaling the base reward.
type Importance string

const (
	ImportanceSimple    Importance = "simple"
	ImportanceMedium    Importance = "medium"
	ImportanceImportant Importance = "important"
)

const DefaultImportance = ImportanceMedium

func (i Importance) IsValid() bool {
	switch i {
	case ImportanceSimple, ImportanceMedium, ImportanceImportant:
		return true
	default:
		return false
	}
}

func ParseImportance(input string) Importance {
	i := Importance(strings.TrimSpace(strings.ToLower(input)))
	if i.IsValid() {
		return i
	}
	return DefaultImportance
}

// Factor returns the multiplier applied to every field of the base reward.
func (i Importance) Factor() float64 {
	switch i {
	case ImportanceSimple:
		return 0.6
	case ImportanceImportant:
		return 1.4
	default:
		return 1.0
	}
}

// Reward is the tuple credited for a completion. Health and Stress are
// deltas; negative health means the completion costs health, negative stress
// means it relieves stress.
type Reward struct {
	Coins  int
	XP     int
	Health int
	Stress int
}

var baseRewards = map[FolderType]Reward{
	FolderTrabalho:        {Coins: 120, XP: 35, Health: -6, Stress: 16},
	FolderEstudos:         {Coins: 90, XP: 45, Health: -4, Stress: 12},
	FolderLazer:           {Coins: 40, XP: 20, Health: 8, Stress: -18},
	FolderTarefasPessoais: {Coins: 70, XP: 30, Health: -2, Stress: 6},
}

// BaseReward returns the raw reward tuple for a folder type. Unknown folder
// types fall back to the default.
func BaseReward(f FolderType) Reward {
	if r, ok := baseRewards[f]; ok {
		return r
	}
	return baseRewards[DefaultFolderType]
}
