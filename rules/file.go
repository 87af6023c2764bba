// SPDX-License-Identifier: GPL-3.0-or-later
package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/CrawX/go-instapaper-sorter/filestore"
	"github.com/CrawX/go-instapaper-sorter/log"

	"github.com/sirupsen/logrus"
)

// FileRepository keeps rules in a JSON object of pattern to folder id.
type FileRepository struct {
	path string
	l    *logrus.Logger
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: path,
		l:    log.Logger(log.LOG_RULES),
	}
}

func (fr *FileRepository) LoadRules() ([]domain.Rule, error) {
	rf := ruleFile{}
	found, err := filestore.Load(fr.path, &rf)
	if err != nil {
		return nil, fmt.Errorf("could not load rules: %w", err)
	}

	if !found {
		fr.l.WithField("file", fr.path).Debug("No rule file, starting with an empty rule set")
		return []domain.Rule{}, nil
	}

	fr.l.WithFields(logrus.Fields{"file": fr.path, "rules": len(rf)}).Debug("Loaded rules")
	return rf, nil
}

func (fr *FileRepository) SaveRules(rules []domain.Rule) error {
	err := filestore.Save(fr.path, ruleFile(rules))
	if err != nil {
		return fmt.Errorf("could not save rules: %w", err)
	}

	fr.l.WithFields(logrus.Fields{"file": fr.path, "rules": len(rules)}).Debug("Saved rules")
	return nil
}

// ruleFile (de)serializes rules as a JSON object keeping key order.
type ruleFile []domain.Rule

func (rf ruleFile) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, r := range rf {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Pattern)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(r.FolderId, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (rf *ruleFile) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("rule file must contain an object of domain to folder id")
	}

	rules := []domain.Rule{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		pattern, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in rule file", tok)
		}

		var folderId int64
		err = dec.Decode(&folderId)
		if err != nil {
			return fmt.Errorf("invalid folder id for %s: %w", pattern, err)
		}
		rules = append(rules, domain.Rule{Pattern: pattern, FolderId: folderId})
	}

	_, err = dec.Token()
	if err != nil {
		return err
	}

	*rf = rules
	return nil
}
