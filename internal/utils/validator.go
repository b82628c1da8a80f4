package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/spf13/viper"
)

var trans ut.Translator

// InitTrans 为 gin 的参数校验器挂上错误信息翻译器
func InitTrans() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// 错误信息里用 json 字段名，去掉 ",omitempty" 之类的选项
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		return name
	})

	lang := viper.GetString("server.lang")
	uni := ut.New(en.New(), zh.New(), en.New())
	trans, ok = uni.GetTranslator(lang)
	if !ok {
		panic(fmt.Errorf("uni.GetTranslator(%s) failed", lang))
	}

	var err error
	if lang == "zh" {
		err = zhTranslations.RegisterDefaultTranslations(v, trans)
	} else {
		err = enTranslations.RegisterDefaultTranslations(v, trans)
	}
	if err != nil {
		panic(err.Error())
	}
}

// 把校验错误翻译成按字段分组的提示，非校验错误统一返回提示语
func ParseToValidationError(err error) any {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Translate(trans)
	}
	return "无效参数"
}
