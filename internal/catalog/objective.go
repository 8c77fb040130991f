package catalog

// objectives maps objective codes to instruction paragraphs.
var objectives = map[string]string{
	"venda_direta": "O objetivo desta copy é VENDA DIRETA. Cada linha existe para levar o leitor à compra nesta sessão: promessa forte, prova imediata, oferta clara com preço ancorado e urgência real. Antecipe e destrua as três principais objeções antes do fechamento. Não eduque além do necessário para justificar a decisão — esta não é uma peça de relacionamento.",

	"geracao_leads": "O objetivo desta copy é GERAÇÃO DE LEADS. A conversão pedida é pequena — um email, um cadastro — então o atrito deve ser mínimo e a recompensa imediata óbvia. Venda a isca, não o produto final: deixe claro o valor específico que a pessoa recebe ao se inscrever e o que acontece em seguida. Reduza o medo de spam com uma promessa explícita de relevância.",

	"engajamento": "O objetivo desta copy é ENGAJAMENTO e compartilhamento. Escreva para provocar reação: opinião com ângulo, pergunta que exige resposta, afirmação que o leitor quer repassar para provar um ponto. O sucesso se mede em comentários e partilhas, não em cliques de venda — portanto nada de CTA comercial; o convite é para participar da conversa.",

	"educacao": "O objetivo desta copy é EDUCAÇÃO e autoridade. Entregue ensino genuíno que resolva um problema real de ponta a ponta, com profundidade que surpreenda quem esperava conteúdo raso. Posicione a marca como a fonte que entende do assunto, sem vender na peça — a venda futura é consequência da confiança construída aqui.",

	"retencao": "O objetivo desta copy é RETENÇÃO de clientes atuais. Fale com quem já comprou: reconheça a relação existente, celebre o progresso que a pessoa já teve e mostre o próximo nível de resultado disponível. Reforce a decisão de compra original em vez de repetir argumentos de aquisição. O tom é de parceiro de jornada, não de vendedor.",

	"upsell_cross_sell": "O objetivo desta copy é UPSELL/CROSS-SELL. O leitor já é cliente e já confia: a ponte é mostrar que o resultado que ele busca fica incompleto ou mais lento sem o complemento oferecido. Ancore no que ele já possui ('você já tem X, isso multiplica X') e torne a adição uma decisão pequena e óbvia, não uma nova grande compra.",

	"reativacao": "O objetivo desta copy é REATIVAÇÃO de contatos frios ou clientes inativos. Reconheça a ausência sem culpar o leitor, reapresente o valor com o que mudou desde então e dê um motivo concreto para voltar agora — oferta exclusiva, novidade relevante ou prazo real. Uma saída honrosa ('se não faz mais sentido, cancele aqui') aumenta a resposta em vez de reduzi-la.",
}
