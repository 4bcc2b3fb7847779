// Package parser turns a line of user input into a command.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/usecase/command"
	"github.com/atyhamos/tp/internal/usecase/filter"
)

// Parser maps command words to their argument parsers.
type Parser struct {
	parsers map[string]func(args string) (command.Command, error)
}

func New() *Parser {
	p := &Parser{}
	p.parsers = map[string]func(string) (command.Command, error){
		command.AddWord:          parseAdd,
		command.EditWord:         parseEdit,
		command.DeleteWord:       parseDelete,
		command.FindWord:         parseFind,
		command.FilterWord:       parseFilter,
		command.AddLessonWord:    parseAddLesson,
		command.DeleteLessonWord: parseDeleteLesson,
		command.RemarkWord:       parseRemark,
		command.ListWord:         func(string) (command.Command, error) { return &command.ListCommand{}, nil },
		command.ClearWord:        func(string) (command.Command, error) { return &command.ClearCommand{}, nil },
		command.HelpWord:         func(string) (command.Command, error) { return &command.HelpCommand{}, nil },
		command.ExitWord:         func(string) (command.Command, error) { return &command.ExitCommand{}, nil },
	}
	return p
}

// Parse reads the command word and hands the rest of the line to its parser.
func (p *Parser) Parse(input string) (command.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, invalidFormat(command.HelpText())
	}

	word, args := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		word, args = trimmed[:i], trimmed[i:]
	}

	parse, ok := p.parsers[word]
	if !ok {
		return nil, parseErr(command.MessageUnknownCommand, nil)
	}
	return parse(args)
}

func invalidFormat(usage string) error {
	return parseErr(fmt.Sprintf(command.MessageInvalidCommandFormat, usage), nil)
}

func parseAdd(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixLevel, PrefixAddress, PrefixRemark, PrefixTag)
	if !am.HasAll(PrefixName, PrefixPhone, PrefixLevel, PrefixAddress) || am.Preamble() != "" {
		return nil, invalidFormat(command.AddUsage)
	}

	v := func(p Prefix) string { s, _ := am.Value(p); return s }
	name, err := ParseName(v(PrefixName))
	if err != nil {
		return nil, err
	}
	phone, err := ParsePhone(v(PrefixPhone))
	if err != nil {
		return nil, err
	}
	level, err := ParseLevel(v(PrefixLevel))
	if err != nil {
		return nil, err
	}
	address, err := ParseAddress(v(PrefixAddress))
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(am.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	t := domain.NewTutee(name, phone, level, address, ParseRemark(v(PrefixRemark)), tags, nil)
	return command.NewAddCommand(t), nil
}

func parseEdit(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixLevel, PrefixAddress, PrefixRemark, PrefixTag)
	idx, err := ParseIndex(am.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditUsage)
	}

	var d command.EditDescriptor
	if s, ok := am.Value(PrefixName); ok {
		n, err := ParseName(s)
		if err != nil {
			return nil, err
		}
		d.Name = &n
	}
	if s, ok := am.Value(PrefixPhone); ok {
		p, err := ParsePhone(s)
		if err != nil {
			return nil, err
		}
		d.Phone = &p
	}
	if s, ok := am.Value(PrefixLevel); ok {
		l, err := ParseLevel(s)
		if err != nil {
			return nil, err
		}
		d.Level = &l
	}
	if s, ok := am.Value(PrefixAddress); ok {
		a, err := ParseAddress(s)
		if err != nil {
			return nil, err
		}
		d.Address = &a
	}
	if s, ok := am.Value(PrefixRemark); ok {
		r := ParseRemark(s)
		d.Remark = &r
	}
	if am.Has(PrefixTag) {
		raw := am.AllValues(PrefixTag)
		tags := []domain.Tag{}
		// A lone empty "t/" clears every tag.
		if !(len(raw) == 1 && raw[0] == "") {
			if tags, err = ParseTags(raw); err != nil {
				return nil, err
			}
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return nil, parseErr(command.MessageNotEdited, nil)
	}
	return command.NewEditCommand(idx, d), nil
}

func parseDelete(args string) (command.Command, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteUsage)
	}
	return command.NewDeleteCommand(idx), nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindUsage)
	}
	return command.NewFindCommand(keywords), nil
}

func parseFilter(args string) (command.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(command.FilterUsage)
	}
	e, err := filter.Compile(args)
	if err != nil {
		return nil, err
	}
	return command.NewFilterCommand(e), nil
}

func parseAddLesson(args string) (command.Command, error) {
	am := Tokenize(args, PrefixSubject, PrefixDay, PrefixStartTime, PrefixEndTime, PrefixHourlyRate)
	idx, err := ParseIndex(am.Preamble())
	if err != nil || !am.HasAll(PrefixSubject, PrefixDay, PrefixStartTime, PrefixEndTime, PrefixHourlyRate) {
		return nil, invalidFormat(command.AddLessonUsage)
	}

	v := func(p Prefix) string { s, _ := am.Value(p); return s }
	subject, err := ParseSubject(v(PrefixSubject))
	if err != nil {
		return nil, err
	}
	day, err := domain.ParseDay(v(PrefixDay))
	if err != nil {
		return nil, asParse(err)
	}
	start, err := ParseTimeOfDay(v(PrefixStartTime))
	if err != nil {
		return nil, err
	}
	end, err := ParseTimeOfDay(v(PrefixEndTime))
	if err != nil {
		return nil, err
	}
	rate, err := ParseHourlyRate(v(PrefixHourlyRate))
	if err != nil {
		return nil, err
	}
	return command.NewAddLessonCommand(idx, subject, day, start, end, rate), nil
}

func parseDeleteLesson(args string) (command.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return nil, invalidFormat(command.DeleteLessonUsage)
	}
	idx, err := ParseIndex(fields[0])
	if err != nil {
		return nil, invalidFormat(command.DeleteLessonUsage)
	}
	lessonIdx, err := ParseIndex(fields[1])
	if err != nil {
		return nil, invalidFormat(command.DeleteLessonUsage)
	}
	return command.NewDeleteLessonCommand(idx, lessonIdx), nil
}

func parseRemark(args string) (command.Command, error) {
	am := Tokenize(args, PrefixRemark)
	idx, err := ParseIndex(am.Preamble())
	if err != nil || !am.Has(PrefixRemark) {
		return nil, invalidFormat(command.RemarkUsage)
	}
	r, _ := am.Value(PrefixRemark)
	return command.NewRemarkCommand(idx, ParseRemark(r)), nil
}
