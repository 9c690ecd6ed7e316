package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
	"github.com/ikkim/pcbuild-backend/internal/app/service"
	"github.com/ikkim/pcbuild-backend/internal/importer"
	"github.com/ikkim/pcbuild-backend/internal/storage"
)

// GenerationFailedMessage 견적 생성 실패 시 사용자에게 보여주는 유일한 메시지
const GenerationFailedMessage = "견적 생성 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Status  int    // HTTP 상태 코드
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환
// 원본 에러 내용은 응답에 포함하지 않음
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	switch {
	// 1. 인증
	case errors.Is(err, service.ErrInvalidPassphrase):
		return ErrorInfo{http.StatusUnauthorized, AuthInvalidPassphrase, "비밀번호가 올바르지 않습니다"}
	case errors.Is(err, service.ErrPassphraseRequired):
		return ErrorInfo{http.StatusBadRequest, AdminPassphraseRequired, "모든 필드를 입력해주세요"}
	case errors.Is(err, service.ErrPassphraseMismatch):
		return ErrorInfo{http.StatusBadRequest, AdminPassphraseMismatch, "비밀번호가 일치하지 않습니다"}

	// 2. 견적 생성
	case errors.Is(err, service.ErrGeneration):
		return ErrorInfo{http.StatusBadGateway, QuoteGenerationFailed, GenerationFailedMessage}
	case errors.Is(err, service.ErrInvalidQuoteRequest):
		return ErrorInfo{http.StatusBadRequest, QuoteInvalidRequest, "사용 용도와 0보다 큰 예산을 입력해주세요"}

	// 3. 리소스 없음
	case errors.Is(err, service.ErrComponentNotFound):
		return ErrorInfo{http.StatusNotFound, CatalogComponentNotFound, "부품을 찾을 수 없습니다"}
	case errors.Is(err, service.ErrAdditionalItemNotFound):
		return ErrorInfo{http.StatusNotFound, ItemNotFound, "추가 상품을 찾을 수 없습니다"}
	case errors.Is(err, service.ErrBundleNotFound):
		return ErrorInfo{http.StatusNotFound, BundleNotFound, "아리젠프라임구성을 찾을 수 없습니다"}

	// 4. 입력값
	case errors.Is(err, model.ErrUnknownCategory):
		return ErrorInfo{http.StatusBadRequest, CatalogUnknownCategory, "알 수 없는 부품 카테고리입니다"}
	case errors.Is(err, model.ErrCategoryMismatch):
		return ErrorInfo{http.StatusBadRequest, CatalogCategoryMismatch, "카테고리에 맞지 않는 부품이 포함되어 있습니다"}
	case errors.Is(err, model.ErrCommissionOutOfRange):
		return ErrorInfo{http.StatusBadRequest, CommissionInvalidRate, "수수료율은 0 이상 100 이하여야 합니다"}
	case errors.Is(err, service.ErrInvalidAdditionalItem):
		return ErrorInfo{http.StatusBadRequest, ItemInvalidPrice, "가격은 0 이상이어야 합니다"}
	case errors.Is(err, service.ErrInvalidPrice):
		return ErrorInfo{http.StatusBadRequest, BundleInvalidPrice, "판매가는 0 이상이어야 합니다"}

	// 5. 파일 가져오기
	case errors.Is(err, importer.ErrEmptyFile):
		return ErrorInfo{http.StatusBadRequest, ImportEmptyFile, "파일에 데이터가 없습니다"}
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return ErrorInfo{http.StatusBadRequest, ImportUnsupportedFormat, "CSV 또는 XLSX 파일만 업로드할 수 있습니다"}

	// 6. 문서 저장소
	case errors.Is(err, storage.ErrStorageDisabled):
		return ErrorInfo{http.StatusServiceUnavailable, DocumentStorageDisabled, "문서 저장소가 설정되지 않았습니다"}
	}

	// 7. 네트워크/연결 에러
	errStrLower := strings.ToLower(err.Error())
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Status:  http.StatusBadGateway,
			Code:    InternalExternalAPI,
			Message: "외부 서비스 연결에 실패했습니다. 잠시 후 다시 시도해주세요",
		}
	}

	// 8. 기본 내부 서버 오류
	return ErrorInfo{
		Status:  http.StatusInternalServerError,
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

// getDefaultErrorMessage context에 따른 기본 에러 메시지
func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "import") || strings.Contains(contextLower, "가져오기"):
		return "파일을 처리하는 중 오류가 발생했습니다. 파일 형식과 내용을 확인해주세요"
	case strings.Contains(contextLower, "publish") || strings.Contains(contextLower, "업로드"):
		return "문서 업로드에 실패했습니다"
	case strings.Contains(contextLower, "export") || strings.Contains(contextLower, "문서"):
		return "문서를 생성하는 중 오류가 발생했습니다"
	}
	return "요청 처리 중 오류가 발생했습니다"
}

// ValidationFields 바인딩 검증 에러를 필드별 메시지로 변환
// validator 에러가 아니면 nil 반환
func ValidationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[lowerFirst(fe.Field())] = validationMessage(fe)
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목입니다"
	case "gt":
		return "0보다 커야 합니다"
	case "gte", "min":
		return fe.Param() + " 이상이어야 합니다"
	case "lte", "max":
		return fe.Param() + " 이하여야 합니다"
	case "eqfield":
		return "값이 일치하지 않습니다"
	}
	return "올바르지 않은 값입니다"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
