package validator

import (
	"fmt"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := register(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// RegisterGin adds the custom tags to gin's binding engine so request structs
// can use them in `binding` tags.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return register(v)
}

func register(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"difficulty": isDifficulty,
		"mark":       isMark,
		"board":      isBoard,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return nil
}

func isDifficulty(fl validator.FieldLevel) bool {
	_, err := bot.ParseDifficulty(fl.Field().String())
	return err == nil
}

func isMark(fl validator.FieldLevel) bool {
	_, err := game.ParseMark(fl.Field().String())
	return err == nil
}

func isBoard(fl validator.FieldLevel) bool {
	_, err := game.ParseBoard(fl.Field().String())
	return err == nil
}
