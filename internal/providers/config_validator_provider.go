package providers

import (
	"chatsplit/internal/structures"
	"fmt"
	"github.com/gookit/validate"
	"time"
	_ "time/tzdata"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}

	if _, err := time.LoadLocation(cv.conf.Grouping.Timezone); err != nil {
		return fmt.Errorf("invalid config: unknown timezone %q: %w", cv.conf.Grouping.Timezone, err)
	}

	if cv.conf.Metrics.Enabled && cv.conf.Metrics.Textfile == "" {
		return fmt.Errorf("invalid config: metrics enabled without a textfile path")
	}
	return nil
}
