// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the HTTP
// handlers and middleware.
//
// Messages are Korean because the web client renders them verbatim. Messages
// that embed a value (folder or company name, question count) are format
// strings for fmt.Sprintf.
package app

// Generic messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be decoded.
	MsgInvalidDataProvided = "잘못된 요청입니다"

	// MsgInternalServerError is returned for any failure the client cannot resolve.
	MsgInternalServerError = "오류가 발생했습니다"

	MsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	MsgUploadFailed    = "업로드 중 오류가 발생했습니다"
	MsgFindEmailFailed = "아이디 찾기 중 오류가 발생했습니다"
)

// Authentication and authorization.
const (
	MsgLoginRequired = "로그인이 필요합니다"
	MsgAdminRequired = "관리자 권한이 필요합니다"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be verified.
	MsgTokenIsExpiredOrInvalid = "인증 정보가 유효하지 않습니다. 다시 로그인해주세요"

	MsgSignUpFieldsRequired   = "이메일, 비밀번호, 이름을 모두 입력해주세요"
	MsgEmailAlreadyExists     = "이미 존재하는 이메일입니다"
	MsgSignUpSucceeded        = "회원가입이 완료되었습니다"
	MsgSignInFieldsRequired   = "이메일과 비밀번호를 입력해주세요"
	MsgInvalidEmail           = "올바른 이메일 형식이 아닙니다"
	MsgPasswordTooLong        = "비밀번호가 너무 깁니다"
	MsgInvalidLoginPassword   = "이메일 또는 비밀번호가 올바르지 않습니다"
	MsgEmailRequired          = "이메일을 입력해주세요"
	MsgResetTokenIssued       = "비밀번호 재설정 코드가 발급되었습니다"
	MsgResetFieldsRequired    = "모든 필드를 입력해주세요"
	MsgPasswordTooShort       = "비밀번호는 6자 이상이어야 합니다"
	MsgInvalidResetToken      = "유효하지 않거나 만료된 토큰입니다"
	MsgPasswordResetSucceeded = "비밀번호가 재설정되었습니다"
	MsgNameRequired           = "이름을 입력해주세요"
	MsgNoMatchingAccount      = "해당 이름으로 가입된 계정을 찾을 수 없습니다."
	MsgAccountsFoundFormat    = "%d개의 계정을 찾았습니다."
)

// Question catalog.
const (
	MsgCategoryNotFound = "카테고리를 찾을 수 없습니다"
	MsgQuestionNotFound = "질문을 찾을 수 없습니다"
)

// Favorites.
const (
	MsgFavoriteAdded   = "찜 추가"
	MsgFavoriteRemoved = "찜 해제"
	MsgFavoriteIDs     = "카테고리와 질문 ID가 필요합니다"
)

// User folders and saved questions.
const (
	MsgFolderNameRequired     = "폴더 이름을 입력해주세요"
	MsgFolderNameTaken        = "이미 존재하는 폴더 이름입니다"
	MsgInvalidFolderColor     = "올바른 색상 코드가 아닙니다"
	MsgTargetFolderRequired   = "이동할 폴더를 선택해주세요"
	MsgFolderNotFound         = "폴더를 찾을 수 없습니다"
	MsgFolderCreated          = "폴더가 생성되었습니다"
	MsgFolderUpdated          = "폴더가 수정되었습니다"
	MsgFolderDeleted          = "폴더가 삭제되었습니다"
	MsgSaveFieldsRequired     = "필수 정보가 누락되었습니다"
	MsgQuestionAlreadySaved   = "이미 이 폴더에 저장된 질문입니다"
	MsgSavedQuestionFormat    = "\"%s\" 폴더에 질문이 저장되었습니다"
	MsgSavedQuestionDeleted   = "질문이 삭제되었습니다"
	MsgSavedQuestionMoved     = "질문이 이동되었습니다"
	MsgFolderNotEmptyDetailed = "폴더에 질문이 있어 삭제할 수 없습니다. 먼저 질문들을 다른 폴더로 이동하거나 삭제해주세요."
)

// Portfolio.
const (
	MsgFileMissing            = "파일이 없습니다"
	MsgOnlyPDFAllowed         = "PDF 파일만 업로드 가능합니다"
	MsgFileTooLarge           = "파일 크기는 10MB 이하여야 합니다"
	MsgPortfolioUploaded      = "포트폴리오가 업로드되었습니다"
	MsgTextExtractionFailed   = "PDF에서 텍스트를 추출할 수 없습니다"
	MsgPortfolioIDRequired    = "포트폴리오 ID가 필요합니다"
	MsgPortfolioNotFound      = "포트폴리오를 찾을 수 없습니다"
	MsgQuestionsGenerated     = "%d개의 질문이 생성되었습니다"
	MsgAnalysisFailed         = "분석 중 오류가 발생했습니다"
	MsgQuestionAnswerRequired = "질문과 답변을 모두 입력해주세요"
	MsgQuestionAdded          = "질문이 추가되었습니다"
	MsgQuestionUpdated        = "질문이 수정되었습니다"
	MsgQuestionDeleted        = "질문이 삭제되었습니다"
	MsgQuestionMovedToFolder  = "질문이 폴더로 이동되었습니다"
	MsgQuestionRemovedFolder  = "질문이 폴더에서 제거되었습니다"
)

// Company question files.
const (
	MsgCompanyNameRequired     = "기업명을 입력해주세요"
	MsgCompanyNameMissing      = "기업명이 필요합니다"
	MsgCompanyAlreadyExists    = "이미 존재하는 기업입니다"
	MsgCompanyNotFound         = "기업 파일을 찾을 수 없습니다"
	MsgCompanyCreatedFormat    = "%s 폴더가 생성되었습니다"
	MsgCompanyDeletedFormat    = "%s 폴더가 삭제되었습니다"
	MsgCompanyFieldsRequired   = "필수 항목을 입력해주세요"
	MsgCompanyNameInvalid      = "사용할 수 없는 기업명입니다"
	MsgCompanyQuestionAppended = "질문이 추가되었습니다"
)
