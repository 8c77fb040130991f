package catalog

// copyTypes maps copy-type codes to instruction paragraphs.
// Texts are in Portuguese, the product's market language.
var copyTypes = map[string]string{
	"landing_page": "Você está escrevendo uma LANDING PAGE de conversão. Estruture o texto em blocos escaneáveis: headline magnética, subheadline que amplia a promessa, prova social, quebra de objeções e chamadas para ação repetidas ao longo da página. Cada seção deve sustentar uma única ideia central e empurrar o leitor para a próxima, sem desvios. O CTA deve ser específico e orientado ao benefício, nunca genérico.",

	"anuncio": "Você está escrevendo um ANÚNCIO pago para redes sociais ou busca. Os três primeiros segundos decidem tudo: abra com um gancho que interrompa a rolagem, direto na dor ou no desejo do público. Seja econômico nas palavras, concreto nos benefícios e termine com uma única chamada para ação clara. Evite jargões e promessas vagas que disparem recusa imediata ou reprovação da plataforma.",

	"vsl": "Você está escrevendo um roteiro de VSL (Video Sales Letter). Escreva para ser FALADO, não lido: frases curtas, ritmo de conversa, loops abertos que seguram a atenção até o pitch. Estruture em lead (gancho e promessa), história e mecanismo, demonstração de prova, oferta e fechamento com urgência. Marque as transições emocionais do roteiro para orientar a narração.",

	"email": "Você está escrevendo um EMAIL de marketing. O assunto é metade do trabalho: curto, curioso e impossível de ignorar sem parecer clickbait. O corpo deve soar pessoal, como escrito de uma pessoa para outra, com parágrafos de uma a três linhas e um único objetivo por mensagem. Termine com uma chamada para ação única e clara; múltiplos links competindo entre si matam a conversão.",

	"webinar": "Você está escrevendo o roteiro de um WEBINAR de vendas. Organize em três atos: conteúdo genuíno que entrega valor e constrói autoridade, virada que conecta o ensinamento à solução completa, e pitch com oferta, bônus, garantia e urgência. Prometa e cumpra transformação já durante o evento — o pitch só funciona se a audiência sentir que aprendeu algo real antes dele.",

	"conteudo": "Você está escrevendo CONTEÚDO editorial (blog, newsletter ou post orgânico). O objetivo imediato é gerar valor e construir audiência, não vender: entregue utilidade genuína, com profundidade e opinião própria. Otimize o título para busca e curiosidade, estruture com subtítulos escaneáveis e feche conectando o tema a um próximo passo leve (assinar, seguir, ler mais).",

	"mensagem_direta": "Você está escrevendo uma MENSAGEM DIRETA (WhatsApp, DM ou SMS). Ela chega num espaço íntimo: seja breve, pessoal e imediatamente relevante, como uma mensagem de alguém que a pessoa conhece. Nada de blocos de texto — no máximo algumas linhas, uma pergunta ou um convite concreto, e saída fácil. Tom de conversa real; formalidade excessiva aqui soa como spam.",

	"outro": "Você está escrevendo uma peça de copy de formato livre. Aplique os fundamentos: uma única grande ideia, promessa clara, prova que a sustenta e chamada para ação específica. Adapte tom e extensão ao canal indicado pelo restante do contexto e, na dúvida, corte — texto enxuto converte mais que texto completo.",
}
