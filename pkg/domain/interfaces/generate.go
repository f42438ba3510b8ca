package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Publisher Policy
//go:generate moq -out ../mock/usecase.go -pkg mock . UseCases
