package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized      = "AUTH_UNAUTHORIZED"       // 관리자 인증 필요
	AuthInvalidPassphrase = "AUTH_INVALID_PASSPHRASE" // 잘못된 관리자 비밀번호

	// ==================== 관리자 (ADMIN_) ====================
	AdminPassphraseRequired = "ADMIN_PASSPHRASE_REQUIRED" // 비밀번호 미입력
	AdminPassphraseMismatch = "ADMIN_PASSPHRASE_MISMATCH" // 비밀번호 확인 불일치

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"  // 범위 초과
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // 리소스 없음

	// ==================== 부품 (CATALOG_) ====================
	CatalogComponentNotFound = "CATALOG_COMPONENT_NOT_FOUND" // 부품 없음
	CatalogUnknownCategory   = "CATALOG_UNKNOWN_CATEGORY"    // 알 수 없는 카테고리
	CatalogCategoryMismatch  = "CATALOG_CATEGORY_MISMATCH"   // 카테고리와 맞지 않는 부품

	// ==================== 추가 상품 (ITEM_) ====================
	ItemNotFound     = "ITEM_NOT_FOUND"     // 추가 상품 없음
	ItemInvalidPrice = "ITEM_INVALID_PRICE" // 잘못된 가격

	// ==================== 완본체 (BUNDLE_) ====================
	BundleNotFound     = "BUNDLE_NOT_FOUND"     // 완본체 없음
	BundleInvalidPrice = "BUNDLE_INVALID_PRICE" // 잘못된 판매가

	// ==================== 수수료 (COMMISSION_) ====================
	CommissionInvalidRate = "COMMISSION_INVALID_RATE" // 잘못된 수수료율

	// ==================== 견적 (QUOTE_) ====================
	QuoteInvalidRequest   = "QUOTE_INVALID_REQUEST"   // 용도/예산 누락
	QuoteGenerationFailed = "QUOTE_GENERATION_FAILED" // 견적 생성 실패

	// ==================== 가져오기 (IMPORT_) ====================
	ImportEmptyFile         = "IMPORT_EMPTY_FILE"         // 빈 파일
	ImportUnsupportedFormat = "IMPORT_UNSUPPORTED_FORMAT" // 지원하지 않는 형식
	ImportParseFailed       = "IMPORT_PARSE_FAILED"       // 파일 해석 실패

	// ==================== 문서 (DOCUMENT_) ====================
	DocumentStorageDisabled = "DOCUMENT_STORAGE_DISABLED" // 저장소 미설정
	DocumentPublishFailed   = "DOCUMENT_PUBLISH_FAILED"   // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // 서버 오류
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // 외부 API 오류
)
