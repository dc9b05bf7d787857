package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/sheet --output domain/sheet --outpkg sheetmock --filename source_mock.go
