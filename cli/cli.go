package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/deanrtaylor1/gosource/config"
	"github.com/deanrtaylor1/gosource/report"
	"github.com/deanrtaylor1/gosource/stem"
	"github.com/deanrtaylor1/gosource/store"
	"github.com/deanrtaylor1/gosource/textmodel"
	"github.com/deanrtaylor1/gosource/util"
)

//CLI Interface of GoSource

const (
	actionClassify = "○ Classify a model"
	actionBuild    = "○ Build a model"
	actionShow     = "○ Show a model"
	actionExit     = "○ Exit"
)

type Session struct {
	Config  *config.Config
	Stemmer stem.Stemmer
}

// Clean up the CLI response to remove the bullet point
func formatCliResponse(response string) string {
	return strings.Replace(response, "○ ", "", -1)
}

// Utility function to get a single input from the user
func getSingleInputPrompt(message string) string {
	prompt := &survey.Input{
		Message: message,
	}

	var input string
	err := survey.AskOne(prompt, &input, survey.WithValidator(survey.Required))
	if err != nil {
		log.Fatal(err)
	}

	return input
}

// Utility function to pick one saved model, excluding any already picked
func selectModelPrompt(message string, names []string, exclude ...string) string {
	options := []string{}
	for _, name := range names {
		if contains(exclude, name) {
			continue
		}
		options = append(options, "○ "+name)
	}

	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	var selected string
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		log.Fatal(err)
	}
	return formatCliResponse(selected)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// SplitLocations splits the documents answer on commas and whitespace
func SplitLocations(answer string) []string {
	return strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// Start the CLI
func (s *Session) InitialPrompt(ctx context.Context) {
	for {
		prompt := &survey.Select{
			Message: "What would you like to do?",
			Options: []string{actionClassify, actionBuild, actionShow, actionExit},
		}

		var action string
		if err := survey.AskOne(prompt, &action); err != nil {
			log.Fatal(err)
		}

		var err error
		switch action {
		case actionClassify:
			err = s.classifyPrompt()
		case actionBuild:
			err = s.buildPrompt(ctx)
		case actionShow:
			err = s.showPrompt()
		default:
			return
		}
		if err != nil {
			fmt.Println(util.TerminalRed + err.Error() + util.TerminalReset)
		}
		fmt.Println("------------------------------------------------")
	}
}

func (s *Session) savedModels(minimum int) ([]string, error) {
	names, err := store.ListModels(s.Config.ModelDir)
	if err != nil {
		return nil, err
	}
	if len(names) < minimum {
		return nil, fmt.Errorf("need at least %d saved models in %s, found %d", minimum, s.Config.ModelDir, len(names))
	}
	return names, nil
}

func (s *Session) classifyPrompt() error {
	names, err := s.savedModels(3)
	if err != nil {
		return err
	}

	unknown := selectModelPrompt("Select the model to classify:", names)
	sourceA := selectModelPrompt("Select the first source:", names, unknown)
	sourceB := selectModelPrompt("Select the second source:", names, unknown, sourceA)

	models := make([]*textmodel.Model, 0, 3)
	for _, name := range []string{unknown, sourceA, sourceB} {
		m, err := store.ReadModel(s.Config.ModelDir, name)
		if err != nil {
			return err
		}
		models = append(models, m)
	}

	c := models[0].Classify(models[1], models[2])
	fmt.Print(report.Classification(c, s.Config.Color && report.ShouldColorize(os.Stdout)))
	return nil
}

func (s *Session) buildPrompt(ctx context.Context) error {
	name := getSingleInputPrompt("Enter a name for the model:")
	if err := store.ValidateName(name); err != nil {
		return err
	}
	locations := SplitLocations(getSingleInputPrompt("Enter files or URLs to read (comma separated):"))
	if len(locations) == 0 {
		return errors.New("no documents given")
	}

	m, err := textmodel.FromDocuments(ctx, name, s.Stemmer, s.Config.FetchTimeout(), locations...)
	if err != nil {
		return err
	}
	if err := store.SaveModel(store.FileOpsImpl{}, s.Config.ModelDir, m); err != nil {
		return err
	}
	fmt.Printf(util.TerminalGreen+"Saved model %s from %d documents"+util.TerminalReset+"\n", name, len(locations))
	return nil
}

func (s *Session) showPrompt() error {
	names, err := s.savedModels(1)
	if err != nil {
		return err
	}
	m, err := store.ReadModel(s.Config.ModelDir, selectModelPrompt("Select a model:", names))
	if err != nil {
		return err
	}
	fmt.Print(report.Summary(m, s.Config.TopWords, s.Config.Color && report.ShouldColorize(os.Stdout)))
	return nil
}
